// Package cart is a file-persisted adoption cart built on the API
// client. Each line is one pet; checkout turns lines into adoption
// requests.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"pawhaven-be/pkg/apiclient"
)

// Line is a single pet in the cart. Quantity is always 1, a pet can
// only be adopted once.
type Line struct {
	PetID    string  `json:"pet_id"`
	PetName  string  `json:"pet_name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    *string `json:"notes,omitempty"`
}

// AdoptionRequester is the slice of the API client that checkout needs.
type AdoptionRequester interface {
	CreateAdoptionRequest(ctx context.Context, petID string, notes *string) (*apiclient.AdoptionRequest, error)
}

// CheckoutResult reports the outcome for one cart line.
type CheckoutResult struct {
	PetID   string
	PetName string
	Request *apiclient.AdoptionRequest
	Err     error
}

// Store keeps the cart on disk, rewritten on every mutation.
type Store struct {
	mu    sync.Mutex
	path  string
	lines []Line
}

// Open loads the cart file, creating an empty cart when the file does
// not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.lines); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) persist() error {
	data, err := json.MarshalIndent(s.lines, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Add puts a pet in the cart. Adding the same pet again leaves the
// quantity at 1 and only refreshes the notes.
func (s *Store) Add(petID, petName string, price float64, notes *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.PetID == petID {
			s.lines[i].Notes = notes
			return s.persist()
		}
	}

	s.lines = append(s.lines, Line{
		PetID:    petID,
		PetName:  petName,
		Price:    price,
		Quantity: 1,
		Notes:    notes,
	})
	return s.persist()
}

// Remove drops a pet from the cart. Removing an absent pet is a no-op.
func (s *Store) Remove(petID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, line := range s.lines {
		if line.PetID == petID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// Clear empties the cart.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	return s.persist()
}

// Lines returns a copy of the current cart contents.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems counts the cart lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// TotalPrice sums the line prices.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.lines {
		total += line.Price
	}
	return total
}

// Checkout submits one adoption request per line, in order. Successful
// lines are removed from the cart; failed lines stay so the user can
// retry after fixing the cause. Results come back in line order.
func (s *Store) Checkout(ctx context.Context, requester AdoptionRequester) ([]CheckoutResult, error) {
	s.mu.Lock()
	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	s.mu.Unlock()

	results := make([]CheckoutResult, 0, len(lines))
	succeeded := make(map[string]bool, len(lines))

	for _, line := range lines {
		req, err := requester.CreateAdoptionRequest(ctx, line.PetID, line.Notes)
		results = append(results, CheckoutResult{
			PetID:   line.PetID,
			PetName: line.PetName,
			Request: req,
			Err:     err,
		})
		if err == nil {
			succeeded[line.PetID] = true
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.lines[:0]
	for _, line := range s.lines {
		if !succeeded[line.PetID] {
			remaining = append(remaining, line)
		}
	}
	s.lines = remaining
	if err := s.persist(); err != nil {
		return results, err
	}
	return results, nil
}
