package cart

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"pawhaven-be/pkg/apiclient"

	"github.com/stretchr/testify/assert"
)

type fakeRequester struct {
	failFor map[string]error
	calls   []string
}

func (f *fakeRequester) CreateAdoptionRequest(ctx context.Context, petID string, notes *string) (*apiclient.AdoptionRequest, error) {
	f.calls = append(f.calls, petID)
	if err, ok := f.failFor[petID]; ok {
		return nil, err
	}
	return &apiclient.AdoptionRequest{Id: "req-" + petID, ProductId: petID, Status: "pending"}, nil
}

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cart.json"))
	assert.NoError(t, err)
	return s
}

func TestAddClampsQuantity(t *testing.T) {
	s := newStore(t)

	assert.NoError(t, s.Add("pet-1", "Bella", 150, nil))
	assert.NoError(t, s.Add("pet-1", "Bella", 150, nil))
	assert.NoError(t, s.Add("pet-2", "Milo", 80, nil))

	lines := s.Lines()
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 1, line.Quantity)
	}
	assert.Equal(t, 2, s.TotalItems())
	assert.Equal(t, 230.0, s.TotalPrice())
}

func TestRemoveAndClear(t *testing.T) {
	s := newStore(t)

	assert.NoError(t, s.Add("pet-1", "Bella", 150, nil))
	assert.NoError(t, s.Add("pet-2", "Milo", 80, nil))

	assert.NoError(t, s.Remove("pet-1"))
	assert.Equal(t, 1, s.TotalItems())

	// Removing a pet that is not in the cart is a no-op
	assert.NoError(t, s.Remove("pet-404"))
	assert.Equal(t, 1, s.TotalItems())

	assert.NoError(t, s.Clear())
	assert.Equal(t, 0, s.TotalItems())
}

func TestPersistenceAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	s1, err := Open(path)
	assert.NoError(t, err)
	assert.NoError(t, s1.Add("pet-1", "Bella", 150, nil))

	s2, err := Open(path)
	assert.NoError(t, err)
	assert.Equal(t, 1, s2.TotalItems())
	assert.Equal(t, "Bella", s2.Lines()[0].PetName)
}

func TestCheckoutRemovesOnlySuccessfulLines(t *testing.T) {
	tests := []struct {
		name          string
		pets          []string
		failFor       map[string]error
		wantRemaining []string
	}{
		{
			name:          "all succeed",
			pets:          []string{"pet-1", "pet-2"},
			failFor:       nil,
			wantRemaining: nil,
		},
		{
			name:          "one fails and stays",
			pets:          []string{"pet-1", "pet-2", "pet-3"},
			failFor:       map[string]error{"pet-2": errors.New("You already have a pending or approved adoption request for this pet")},
			wantRemaining: []string{"pet-2"},
		},
		{
			name:          "all fail",
			pets:          []string{"pet-1"},
			failFor:       map[string]error{"pet-1": errors.New("server error")},
			wantRemaining: []string{"pet-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			for _, id := range tt.pets {
				assert.NoError(t, s.Add(id, "Pet "+id, 10, nil))
			}

			requester := &fakeRequester{failFor: tt.failFor}
			results, err := s.Checkout(context.Background(), requester)
			assert.NoError(t, err)
			assert.Len(t, results, len(tt.pets))

			// One call per line, in order
			assert.Equal(t, tt.pets, requester.calls)

			var remaining []string
			for _, line := range s.Lines() {
				remaining = append(remaining, line.PetID)
			}
			assert.Equal(t, tt.wantRemaining, remaining)

			for _, res := range results {
				if _, failed := tt.failFor[res.PetID]; failed {
					assert.Error(t, res.Err)
					assert.Nil(t, res.Request)
				} else {
					assert.NoError(t, res.Err)
					assert.Equal(t, "pending", res.Request.Status)
				}
			}
		})
	}
}
