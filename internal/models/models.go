package models

import (
	"encoding/json"
	"fmt"
)

// SaleItem - One product line inside a day's report
type SaleItem struct {
	ID          string  `json:"id"` // opaque, assigned at creation time
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"` // unit price; the UI's unit/total toggle is resolved before it gets here
}

// DailyReport - Everything sold on one calendar day (YYYY-MM-DD)
// TotalQty and TotalValue are always derived from Items, never set directly.
type DailyReport struct {
	Date       string     `json:"date"`
	Items      []SaleItem `json:"items"`
	TotalValue float64    `json:"totalValue"`
	TotalQty   int        `json:"totalQty"`
	BillImages []string   `json:"billImages,omitempty"` // Base64 image blobs

	// Deprecated: old single-image records. Read-compatible only;
	// folded into BillImages by reports.Upgrade and never written back.
	BillImage string `json:"billImage,omitempty"`

	IsWeekOff bool `json:"isWeekOff,omitempty"`
}

// UserProfile - The single local user. Saving a new one overwrites the old.
type UserProfile struct {
	Name          string  `json:"name"`
	EmployeeID    string  `json:"employeeId"`
	PhoneNumber   string  `json:"phoneNumber"`
	Email         string  `json:"email,omitempty"`
	StoreName     string  `json:"storeName"`
	MonthlyTarget float64 `json:"monthlyTarget"`
	Avatar        string  `json:"avatar,omitempty"` // Base64
}

// IssueType is a closed enum: only the two values below are valid.
type IssueType string

const (
	IssueInstallation IssueType = "Installation"
	IssueComplaint    IssueType = "Complaint"
)

// Valid reports whether t is one of the two known issue types.
func (t IssueType) Valid() bool {
	return t == IssueInstallation || t == IssueComplaint
}

// UnmarshalJSON rejects anything outside the closed set, so a foreign
// value in a stored blob fails the decode instead of leaking through.
func (t *IssueType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v := IssueType(s)
	if !v.Valid() {
		return fmt.Errorf("unknown issue type %q", s)
	}
	*t = v
	return nil
}

// Complaint - A customer service ticket. Never deleted, only resolved/reopened.
type Complaint struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	PhoneNumber  string    `json:"phoneNumber"`
	ProductModel string    `json:"productModel"`
	IssueType    IssueType `json:"issueType"`
	IsResolved   bool      `json:"isResolved"`
	Date         string    `json:"date"` // RFC 3339 creation timestamp
}

// Theme preference values stored under the theme key.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
