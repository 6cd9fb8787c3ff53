package service // contact business logic

import (
	"context" // request-scoped deadlines for store calls
	"errors"  // sentinel matching

	"github.com/rs/zerolog" // structured logging

	"github.com/iliyamo/contacts-api/internal/model"      // contact row, patch and filter
	"github.com/iliyamo/contacts-api/internal/queue"      // lifecycle events
	"github.com/iliyamo/contacts-api/internal/repository" // store sentinels
	"github.com/iliyamo/contacts-api/internal/validation" // request schemas
)

// ContactService performs contact operations on behalf of an authenticated
// user.  The username argument of every method is the caller; contacts
// owned by anyone else behave as if they did not exist.
type ContactService struct {
	contacts ContactStore
	events   EventPublisher
	log      zerolog.Logger
}

func NewContactService(contacts ContactStore, events EventPublisher, log zerolog.Logger) *ContactService {
	if events == nil {
		events = queue.Nop{}
	}
	return &ContactService{contacts: contacts, events: events, log: log}
}

func (s *ContactService) Create(ctx context.Context, username string, req CreateContactRequest) (ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		return ContactResponse{}, err
	}
	c, err := s.contacts.Create(ctx, model.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Username:  username,
	})
	if err != nil {
		return ContactResponse{}, err
	}
	publish(ctx, s.events, s.log, queue.NewEvent(queue.ContactCreated, username, c.ID))
	return toContactResponse(c), nil
}

func (s *ContactService) Get(ctx context.Context, username string, id uint64) (ContactResponse, error) {
	if err := validation.ID(id); err != nil {
		return ContactResponse{}, err
	}
	c, err := s.contacts.GetOwned(ctx, username, id)
	if err != nil {
		return ContactResponse{}, contactErr(err)
	}
	return toContactResponse(c), nil
}

// Update overwrites the supplied fields only.
func (s *ContactService) Update(ctx context.Context, username string, req UpdateContactRequest) (ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		return ContactResponse{}, err
	}
	c, err := s.contacts.UpdateOwned(ctx, username, req.ID, model.ContactPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		return ContactResponse{}, contactErr(err)
	}
	publish(ctx, s.events, s.log, queue.NewEvent(queue.ContactUpdated, username, c.ID))
	return toContactResponse(c), nil
}

func (s *ContactService) Delete(ctx context.Context, username string, id uint64) (bool, error) {
	if err := validation.ID(id); err != nil {
		return false, err
	}
	if err := s.contacts.DeleteOwned(ctx, username, id); err != nil {
		return false, contactErr(err)
	}
	publish(ctx, s.events, s.log, queue.NewEvent(queue.ContactDeleted, username, id))
	return true, nil
}

// Search returns one page of the caller's matching contacts.  A page past
// the end is empty, not an error.
func (s *ContactService) Search(ctx context.Context, username string, req SearchContactRequest) ([]ContactResponse, Paging, error) {
	if err := validation.Struct(req); err != nil {
		return nil, Paging{}, err
	}
	rows, total, err := s.contacts.Search(ctx, username, model.ContactFilter{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Page:  req.Page,
		Size:  req.Size,
	})
	if err != nil {
		return nil, Paging{}, err
	}

	data := make([]ContactResponse, 0, len(rows)) // [] rather than null when empty
	for _, c := range rows {
		data = append(data, toContactResponse(c))
	}
	return data, Paging{
		CurrentPage: req.Page,
		Size:        req.Size,
		TotalPage:   TotalPages(total, req.Size),
	}, nil
}

// TotalPages is ceil(total/size).
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

func contactErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrContactNotFound
	}
	return err
}
