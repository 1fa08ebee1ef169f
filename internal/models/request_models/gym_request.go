package request_models

type CreateGymRequest struct {
	Name        string `json:"name" binding:"required"`
	Img         string `json:"img"`
	Address     string `json:"address"`
	Description string `json:"description"`
	IsIndoor    *bool  `json:"isIndoor"`
}

// UpdateGymRequest only applies the fields present in the payload. Owner and
// timestamp fields have no counterpart here, so a client cannot overwrite them.
type UpdateGymRequest struct {
	Name        *string `json:"name"`
	Img         *string `json:"img"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	IsIndoor    *bool   `json:"isIndoor"`
}
