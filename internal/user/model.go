package user

// Profile is the editable slice of the user's record. Fields are
// explicit optionals; absent means "not added yet", never empty string.
type Profile struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

// UpdateProfileParams carries the full edit form. Empty strings are
// normalized back to null on save, matching what the profile page does.
type UpdateProfileParams struct {
	Name        *string
	PhoneNumber *string
	Address     *string
}
