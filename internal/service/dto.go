package service // request and response shapes

import "github.com/iliyamo/contacts-api/internal/model"

// ----- user requests -----

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=4,max=100"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	Name     string `json:"name" validate:"required,min=4,max=100"`
}

type LoginUserRequest struct {
	Username string `json:"username" validate:"required,min=4,max=100"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

// UpdateUserRequest changes only the fields that are present.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitnil,min=4,max=100"`
	Password *string `json:"password" validate:"omitnil,min=8,max=100"`
}

// UserResponse is the public view of a user; the password never leaves
// the service.  Token is only set by Login.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

func toUserResponse(u model.User) UserResponse {
	return UserResponse{Username: u.Username, Name: u.Name}
}

// ----- contact requests -----

type CreateContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=4,max=100"`
	LastName  *string `json:"last_name" validate:"omitnil,min=4,max=100"`
	Email     *string `json:"email" validate:"omitnil,email,max=200"`
	Phone     *string `json:"phone" validate:"omitnil,min=4,max=100"`
}

// UpdateContactRequest takes its id from the path; body fields are optional.
type UpdateContactRequest struct {
	ID        uint64  `json:"-" param:"id" validate:"gt=0"`
	FirstName *string `json:"first_name" validate:"omitnil,min=4,max=100"`
	LastName  *string `json:"last_name" validate:"omitnil,min=4,max=100"`
	Email     *string `json:"email" validate:"omitnil,email,max=200"`
	Phone     *string `json:"phone" validate:"omitnil,min=4,max=100"`
}

// SearchContactRequest filters are substring matches, combined with AND.
type SearchContactRequest struct {
	Name  string `query:"name" validate:"max=100"`
	Email string `query:"email" validate:"max=200"`
	Phone string `query:"phone" validate:"max=100"`
	Page  int    `query:"page" validate:"min=1"`
	Size  int    `query:"size" validate:"min=1,max=100"`
}

const (
	DefaultPage = 1
	DefaultSize = 10
)

type ContactResponse struct {
	ID        uint64  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

func toContactResponse(c model.Contact) ContactResponse {
	return ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

// Paging describes the page returned by Search.
type Paging struct {
	CurrentPage int `json:"current_page"`
	Size        int `json:"size"`
	TotalPage   int `json:"total_page"`
}
