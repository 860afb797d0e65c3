package apiclient

import "time"

type User struct {
	Id       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type Pet struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       *string   `json:"breed,omitempty"`
	Age         *int      `json:"age,omitempty"`
	Gender      string    `json:"gender"`
	Price       float64   `json:"price"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type AdoptionRequest struct {
	Id            string    `json:"id"`
	UserId        string    `json:"user_id"`
	ProductId     string    `json:"product_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Notes         *string   `json:"notes,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type Favorite struct {
	Id        string    `json:"id"`
	UserId    string    `json:"user_id"`
	ProductId string    `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Notification struct {
	Id        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      *string   `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type UnreadCount struct {
	Unread int64 `json:"unread"`
}
