package domain

type Account struct {
	ID      ID      `json:"id"`
	Name    string  `json:"name"`
	Code    string  `json:"code,omitempty"`
	Type    string  `json:"account_type,omitempty"`
	Balance Decimal `json:"balance,omitempty"`
}

func (a Account) EntityID() ID { return a.ID }

func (a Account) Validate() error {
	if err := requireID("account", a.ID); err != nil {
		return err
	}
	return requireField("account", "name", a.Name)
}

type VoucherEntry struct {
	AccountID ID      `json:"account"`
	Debit     Decimal `json:"debit,omitempty"`
	Credit    Decimal `json:"credit,omitempty"`
	Memo      string  `json:"memo,omitempty"`
}

type Voucher struct {
	ID        ID             `json:"id"`
	Number    string         `json:"voucher_number,omitempty"`
	Type      string         `json:"voucher_type"`
	Date      string         `json:"date"`
	Narration string         `json:"narration,omitempty"`
	Amount    Decimal        `json:"amount,omitempty"`
	Entries   []VoucherEntry `json:"entries,omitempty"`
}

func (v Voucher) EntityID() ID { return v.ID }

func (v Voucher) Validate() error {
	return requireID("voucher", v.ID)
}

// NewVoucher is the create-voucher request body.
type NewVoucher struct {
	Type      string         `json:"voucher_type"`
	Date      string         `json:"date"`
	Narration string         `json:"narration,omitempty"`
	BranchID  ID             `json:"branch,omitempty"`
	Entries   []VoucherEntry `json:"entries"`
}

// Receipt is a payment recorded against an invoice.
type Receipt struct {
	ID         ID      `json:"id"`
	InvoiceID  ID      `json:"invoice"`
	Amount     Decimal `json:"amount"`
	Method     string  `json:"payment_method,omitempty"`
	Reference  string  `json:"reference,omitempty"`
	ReceivedAt string  `json:"received_at,omitempty"`
}

func (r Receipt) EntityID() ID { return r.ID }

func (r Receipt) Validate() error {
	return requireID("receipt", r.ID)
}

type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

func (c Currency) EntityID() ID { return ID(c.Code) }

func (c Currency) Validate() error {
	return requireField("currency", "code", c.Code)
}

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (c Country) EntityID() ID { return ID(c.Code) }

func (c Country) Validate() error {
	return requireField("country", "code", c.Code)
}
