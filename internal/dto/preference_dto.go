package dto

type PreferencesResponse struct {
	Email           bool `json:"email"`
	Push            bool `json:"push"`
	Sms             bool `json:"sms"`
	Marketing       bool `json:"marketing"`
	AdoptionUpdates bool `json:"adoption_updates"`
	MessageAlerts   bool `json:"message_alerts"`
}

// UpdatePreferencesRequest uses pointers so untouched flags are left as
// they were. At least one must be set.
type UpdatePreferencesRequest struct {
	Email           *bool `json:"email"`
	Push            *bool `json:"push"`
	Sms             *bool `json:"sms"`
	Marketing       *bool `json:"marketing"`
	AdoptionUpdates *bool `json:"adoption_updates"`
	MessageAlerts   *bool `json:"message_alerts"`
}

func (r *UpdatePreferencesRequest) HasAny() bool {
	return r.Email != nil || r.Push != nil || r.Sms != nil ||
		r.Marketing != nil || r.AdoptionUpdates != nil || r.MessageAlerts != nil
}
