package domain

type Category struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    ID     `json:"parent,omitempty"`
}

func (c Category) EntityID() ID { return c.ID }

func (c Category) Validate() error {
	if err := requireID("category", c.ID); err != nil {
		return err
	}
	return requireField("category", "name", c.Name)
}

// Product amounts keep the exact text the API emits.
type Product struct {
	ID         ID      `json:"id"`
	Name       string  `json:"name"`
	SKU        string  `json:"sku,omitempty"`
	CategoryID ID      `json:"category,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	Price      Decimal `json:"price,omitempty"`
	Cost       Decimal `json:"cost,omitempty"`
	IsActive   bool    `json:"is_active"`
}

func (p Product) EntityID() ID { return p.ID }

func (p Product) Validate() error {
	if err := requireID("product", p.ID); err != nil {
		return err
	}
	return requireField("product", "name", p.Name)
}

// ProductPatch is a partial product update; nil fields are left untouched upstream.
type ProductPatch struct {
	Name       *string  `json:"name,omitempty"`
	SKU        *string  `json:"sku,omitempty"`
	CategoryID *ID      `json:"category,omitempty"`
	Unit       *string  `json:"unit,omitempty"`
	Price      *Decimal `json:"price,omitempty"`
	Cost       *Decimal `json:"cost,omitempty"`
	IsActive   *bool    `json:"is_active,omitempty"`
}
