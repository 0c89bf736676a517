package domain

type Company struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Country  string `json:"country,omitempty"`
	Currency string `json:"currency,omitempty"`
	LogoURL  string `json:"logo,omitempty"`
}

func (c Company) EntityID() ID { return c.ID }

func (c Company) Validate() error {
	if err := requireID("company", c.ID); err != nil {
		return err
	}
	return requireField("company", "name", c.Name)
}

// Upload is a file attached to a multipart request.
type Upload struct {
	Filename string
	Data     []byte
}

// CompanyForm is the create-company request. It is sent as multipart form data so the
// optional logo can travel with it.
type CompanyForm struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Country  string
	Currency string
	Logo     *Upload
}

// Fields returns the non-empty text fields in a stable order.
func (f CompanyForm) Fields() [][2]string {
	all := [][2]string{
		{"name", f.Name},
		{"email", f.Email},
		{"phone", f.Phone},
		{"address", f.Address},
		{"country", f.Country},
		{"currency", f.Currency},
	}
	out := all[:0]
	for _, kv := range all {
		if kv[1] != "" {
			out = append(out, kv)
		}
	}
	return out
}

func (f CompanyForm) Validate() error {
	return requireField("company form", "name", f.Name)
}

type User struct {
	ID        ID     `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role,omitempty"`
	BranchID  ID     `json:"branch,omitempty"`
}

func (u User) EntityID() ID { return u.ID }

func (u User) Validate() error {
	if err := requireID("user", u.ID); err != nil {
		return err
	}
	return requireField("user", "username", u.Username)
}

// NewUser is the create-user request body.
type NewUser struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Role      string `json:"role,omitempty"`
	BranchID  ID     `json:"branch,omitempty"`
}
