package participants

type Traveler struct {
	Id             int    `json:"id"`
	LastNameKr     string `json:"last_name_kr"`
	FirstNameKr    string `json:"first_name_kr"`
	LastNameEn     string `json:"last_name_en,omitempty"`
	FirstNameEn    string `json:"first_name_en,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	PassportNumber string `json:"passport_number,omitempty"`
	PassportExpiry string `json:"passport_expire_date,omitempty"`
	TotalAmount    int    `json:"total_amount"`
	PaidAmount     int    `json:"paid_amount"`

	PassportVerified bool `json:"passport_verified"`
	IdentityVerified bool `json:"identity_verified"`
	BookingVerified  bool `json:"booking_verified"`
}

// FullName is the Korean name as it is written: last name first.
func (t Traveler) FullName() string {
	return t.LastNameKr + t.FirstNameKr
}

// Balance is the amount not paid yet.
func (t Traveler) Balance() int {
	return t.TotalAmount - t.PaidAmount
}

type TripParticipant struct {
	Id         int      `json:"id"`
	TripId     int      `json:"trip"`
	Traveler   Traveler `json:"traveler"`
	JoinedDate *string  `json:"joined_date"`
	InviteCode string   `json:"invite_code,omitempty"`
}

// Joined reports whether the participant has registered with the invite code.
func (p TripParticipant) Joined() bool {
	return p.JoinedDate != nil
}
