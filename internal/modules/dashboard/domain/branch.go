package domain

// Branch is a company location. The reference store keeps the latest loaded list to
// resolve branch ids on transfer records.
type Branch struct {
	ID        ID     `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code,omitempty"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CompanyID ID     `json:"company,omitempty"`
	IsMain    bool   `json:"is_main,omitempty"`
}

func (b Branch) EntityID() ID { return b.ID }

func (b Branch) Validate() error {
	if err := requireID("branch", b.ID); err != nil {
		return err
	}
	return requireField("branch", "name", b.Name)
}

// Vendor supplies goods on purchase orders.
type Vendor struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func (v Vendor) EntityID() ID { return v.ID }

func (v Vendor) Validate() error {
	if err := requireID("vendor", v.ID); err != nil {
		return err
	}
	return requireField("vendor", "name", v.Name)
}
