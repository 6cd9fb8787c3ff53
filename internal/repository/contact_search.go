package repository // contact search: dynamic filters, count, then one page

import (
	"context"
	"fmt"
	"strings"

	"github.com/iliyamo/contacts-api/internal/model"
)

// likeEscaper escapes LIKE wildcards so user input matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func contains(s string) string { return "%" + likeEscaper.Replace(s) + "%" }

// searchWhere builds the WHERE clause for f.  The owner condition always
// comes first; the optional filters are ANDed after it.
func searchWhere(username string, f model.ContactFilter) (string, []any) {
	where := []string{"username = ?"}
	args := []any{username}

	if f.Name != "" {
		where = append(where, "(first_name LIKE ? OR last_name LIKE ?)")
		args = append(args, contains(f.Name), contains(f.Name))
	}
	if f.Email != "" {
		where = append(where, "email LIKE ?")
		args = append(args, contains(f.Email))
	}
	if f.Phone != "" {
		where = append(where, "phone LIKE ?")
		args = append(args, contains(f.Phone))
	}
	return strings.Join(where, " AND "), args
}

// Search returns one page of the caller's contacts matching f together with
// the total number of matches.  Page and Size must already be validated.
func (r *ContactRepo) Search(ctx context.Context, username string, f model.ContactFilter) ([]model.Contact, int64, error) {
	cond, args := searchWhere(username, f)

	var total int64
	if err := r.DB.GetContext(ctx, &total, "SELECT COUNT(*) FROM contacts WHERE "+cond, args...); err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	out := make([]model.Contact, 0, f.Size)
	// compare page numbers, not offsets: (page-1)*size overflows for huge pages
	size := int64(f.Size)
	lastPage := (total + size - 1) / size
	if total == 0 || int64(f.Page) > lastPage {
		return out, total, nil
	}
	offset := (int64(f.Page) - 1) * size // < total, cannot overflow

	dataArgs := append(append([]any{}, args...), f.Size, offset)
	err := r.DB.SelectContext(ctx, &out,
		"SELECT "+contactColumns+" FROM contacts WHERE "+cond+" ORDER BY id ASC LIMIT ? OFFSET ?",
		dataArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("select contacts: %w", err)
	}
	return out, total, nil
}
