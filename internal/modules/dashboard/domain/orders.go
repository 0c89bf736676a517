package domain

type OrderItem struct {
	ProductID ID      `json:"product"`
	Quantity  Decimal `json:"quantity"`
	UnitPrice Decimal `json:"unit_price,omitempty"`
}

type PurchaseOrder struct {
	ID        ID          `json:"id"`
	Number    string      `json:"order_number,omitempty"`
	VendorID  ID          `json:"vendor"`
	BranchID  ID          `json:"branch,omitempty"`
	Status    string      `json:"status,omitempty"`
	OrderDate string      `json:"order_date,omitempty"`
	Total     Decimal     `json:"total,omitempty"`
	Items     []OrderItem `json:"items,omitempty"`
}

func (o PurchaseOrder) EntityID() ID { return o.ID }

func (o PurchaseOrder) Validate() error { return requireID("purchase order", o.ID) }

type RequisitionOrder struct {
	ID          ID          `json:"id"`
	Number      string      `json:"requisition_number,omitempty"`
	BranchID    ID          `json:"branch"`
	Status      string      `json:"status,omitempty"`
	RequestedBy string      `json:"requested_by,omitempty"`
	Items       []OrderItem `json:"items,omitempty"`
}

func (o RequisitionOrder) EntityID() ID { return o.ID }

func (o RequisitionOrder) Validate() error { return requireID("requisition order", o.ID) }

// TransferOrder moves stock between two branches of the same company.
type TransferOrder struct {
	ID                ID          `json:"id"`
	Number            string      `json:"transfer_number,omitempty"`
	SourceBranch      ID          `json:"source_branch"`
	DestinationBranch ID          `json:"destination_branch"`
	Status            string      `json:"status,omitempty"`
	TransferDate      string      `json:"transfer_date,omitempty"`
	Items             []OrderItem `json:"items,omitempty"`
}

func (o TransferOrder) EntityID() ID { return o.ID }

func (o TransferOrder) Validate() error { return requireID("transfer order", o.ID) }
