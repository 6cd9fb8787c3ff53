package handler // contact endpoints

import (
	"time" // per-request store deadline

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/contacts-api/internal/service"    // owner-scoped contact logic
	"github.com/iliyamo/contacts-api/internal/validation" // field errors for bad query values
)

// ContactHandler serves /api/contacts.  Every route is behind the auth
// guard and acts on the caller's contacts only.
type ContactHandler struct {
	Contacts *service.ContactService
	Timeout  time.Duration
}

func NewContactHandler(contacts *service.ContactService, timeout time.Duration) *ContactHandler {
	return &ContactHandler{Contacts: contacts, Timeout: timeout}
}

// Create: POST /api/contacts
func (h *ContactHandler) Create(c echo.Context) error {
	u, err := currentUser(c)
	if err != nil {
		return err
	}
	var req service.CreateContactRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	// the owner is always the caller, never taken from the body
	resp, err := h.Contacts.Create(ctx, u.Username, req)
	if err != nil {
		return err
	}
	return success(c, resp, "Contact created successfully")
}

// Get: GET /api/contacts/:id
func (h *ContactHandler) Get(c echo.Context) error {
	u, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := contactID(c)
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	resp, err := h.Contacts.Get(ctx, u.Username, id)
	if err != nil {
		return err
	}
	return success(c, resp, "")
}

// Update: PUT /api/contacts/:id
func (h *ContactHandler) Update(c echo.Context) error {
	u, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := contactID(c)
	if err != nil {
		return err
	}
	var req service.UpdateContactRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	req.ID = id // the path wins over anything in the body

	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	resp, err := h.Contacts.Update(ctx, u.Username, req)
	if err != nil {
		return err
	}
	return success(c, resp, "Contact updated successfully")
}

// Delete: DELETE /api/contacts/:id
func (h *ContactHandler) Delete(c echo.Context) error {
	u, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := contactID(c)
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	ok, err := h.Contacts.Delete(ctx, u.Username, id)
	if err != nil {
		return err
	}
	return success(c, ok, "Contact deleted successfully")
}

// Search: GET /api/contacts?name=&email=&phone=&page=&size=
func (h *ContactHandler) Search(c echo.Context) error {
	u, err := currentUser(c)
	if err != nil {
		return err
	}
	// absent page/size keep their defaults
	req := service.SearchContactRequest{Page: service.DefaultPage, Size: service.DefaultSize}
	errs := echo.QueryParamsBinder(c).
		String("name", &req.Name).
		String("email", &req.Email).
		String("phone", &req.Phone).
		Int("page", &req.Page).
		Int("size", &req.Size).
		BindErrors()
	if len(errs) > 0 {
		return queryErrors(errs)
	}

	ctx, cancel := withTimeout(c, h.Timeout)
	defer cancel()

	data, paging, err := h.Contacts.Search(ctx, u.Username, req)
	if err != nil {
		return err
	}
	return successPage(c, data, paging, "Contact found successfully")
}

// queryErrors reports malformed query parameters per field.
func queryErrors(errs []error) error {
	out := make(validation.Errors, 0, len(errs))
	for _, err := range errs {
		if be, ok := err.(*echo.BindingError); ok {
			out = append(out, validation.FieldError{Field: be.Field, Message: be.Field + " must be an integer"})
		}
	}
	if len(out) == 0 {
		return validation.Errors{{Field: "query", Message: "query is invalid"}}
	}
	return out
}
