package places

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
)

type Category struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type Place struct {
	Id          int       `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address,omitempty"`
	Category    *Category `json:"category,omitempty"`
	EntranceFee *int      `json:"entrance_fee,omitempty"`

	// Text fields generated by the backend's summary pipeline.
	AISummary      string `json:"ai_generated_info,omitempty"`
	AIMeetingPoint string `json:"ai_meeting_point,omitempty"`
	AICaution      string `json:"ai_caution,omitempty"`

	// Loosely-shaped hint of an alternative place. See package altplace.
	AlternativePlaceInfo json.RawMessage `json:"alternative_place_info,omitempty"`
}

func (p Place) Equal(o Place) bool {
	categoryEq := (p.Category == nil && o.Category == nil) ||
		(p.Category != nil && o.Category != nil && *p.Category == *o.Category)
	feeEq := (p.EntranceFee == nil && o.EntranceFee == nil) ||
		(p.EntranceFee != nil && o.EntranceFee != nil && *p.EntranceFee == *o.EntranceFee)

	return p.Id == o.Id &&
		p.Name == o.Name &&
		p.Address == o.Address &&
		categoryEq &&
		feeEq &&
		p.AISummary == o.AISummary &&
		p.AIMeetingPoint == o.AIMeetingPoint &&
		p.AICaution == o.AICaution &&
		bytes.Equal(p.AlternativePlaceInfo, o.AlternativePlaceInfo)
}

// ListParams narrows down places to be listed.
type ListParams struct {
	Search     string
	CategoryId *int
}

// Values returns query parameters. Empty conditions are not included.
func (p ListParams) Values() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.CategoryId != nil {
		q.Set("category", strconv.Itoa(*p.CategoryId))
	}
	return q
}

type Create struct {
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	CategoryId  *int   `json:"category_id,omitempty"`
	EntranceFee *int   `json:"entrance_fee,omitempty"`
}

// Update is a partial update of a Place.
//
// ClearCategory sends "category_id": null, which unlinks the category.
// Otherwise, CategoryId is sent only when it is not nil.
type Update struct {
	Name          *string
	Address       *string
	CategoryId    *int
	ClearCategory bool
	EntranceFee   *int
}

func (u Update) MarshalJSON() ([]byte, error) {
	fields := map[string]any{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Address != nil {
		fields["address"] = *u.Address
	}
	if u.ClearCategory {
		fields["category_id"] = nil
	} else if u.CategoryId != nil {
		fields["category_id"] = *u.CategoryId
	}
	if u.EntranceFee != nil {
		fields["entrance_fee"] = *u.EntranceFee
	}
	return json.Marshal(fields)
}

type OptionalExpense struct {
	Id           int    `json:"id"`
	PlaceId      int    `json:"place"`
	ItemName     string `json:"item_name"`
	Price        int    `json:"price"`
	DisplayOrder int    `json:"display_order"`
	Description  string `json:"description,omitempty"`
}

type ExpenseCreate struct {
	ItemName     string `json:"item_name"`
	Price        int    `json:"price"`
	DisplayOrder *int   `json:"display_order,omitempty"`
	Description  string `json:"description,omitempty"`
}

type ExpenseUpdate struct {
	ItemName     *string `json:"item_name,omitempty"`
	Price        *int    `json:"price,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	Description  *string `json:"description,omitempty"`
}

// ExpenseTotal is the sum of selected optional expenses, computed by the backend.
type ExpenseTotal struct {
	Total      int   `json:"total"`
	ExpenseIds []int `json:"expense_ids"`
}

type CoordinatorRole struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type Coordinator struct {
	Id      int              `json:"id"`
	PlaceId int              `json:"place"`
	Name    string           `json:"name"`
	Phone   string           `json:"phone"`
	Role    *CoordinatorRole `json:"role,omitempty"`
	Note    string           `json:"note,omitempty"`
}

type CoordinatorCreate struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	RoleId *int   `json:"role_id,omitempty"`
	Note   string `json:"note,omitempty"`
}

type CoordinatorUpdate struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	RoleId *int    `json:"role_id,omitempty"`
	Note   *string `json:"note,omitempty"`
}
