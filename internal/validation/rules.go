package validation // standalone value rules

// Rules for values that are not part of a request body.
const (
	tokenRule = "required,min=4,max=100"
	idRule    = "gt=0"
)

// Token checks the shape of a raw session token.
func Token(raw string) error { return Var("token", raw, tokenRule) }

// ID checks a contact id taken from the path.
func ID(id uint64) error { return Var("id", id, idRule) }
