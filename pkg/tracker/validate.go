package tracker

// ReportInput is an incoming position report from an operator device.
// VehicleID is optional - when empty the report targets whichever
// vehicle is assigned to the calling operator.
type ReportInput struct {
	VehicleID string   `json:"vehicleId"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Speed     *float64 `json:"speed"`
	Heading   *float64 `json:"heading"`
	Accuracy  *float64 `json:"accuracy"`
}

func (input *ReportInput) Validate() error {
	if input.Latitude == nil {
		return &ValidationError{Field: "latitude", Message: "latitude is required"}
	}
	if *input.Latitude < -90 || *input.Latitude > 90 {
		return &ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"}
	}

	if input.Longitude == nil {
		return &ValidationError{Field: "longitude", Message: "longitude is required"}
	}
	if *input.Longitude < -180 || *input.Longitude > 180 {
		return &ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"}
	}

	if input.Speed != nil && *input.Speed < 0 {
		return &ValidationError{Field: "speed", Message: "speed must not be negative"}
	}

	if input.Heading != nil && (*input.Heading < 0 || *input.Heading >= 360) {
		return &ValidationError{Field: "heading", Message: "heading must be between 0 and 360"}
	}

	if input.Accuracy != nil && *input.Accuracy < 0 {
		return &ValidationError{Field: "accuracy", Message: "accuracy must not be negative"}
	}

	return nil
}

func (input *ReportInput) speed() float64 {
	if input.Speed == nil {
		return 0
	}
	return *input.Speed
}

func (input *ReportInput) heading() float64 {
	if input.Heading == nil {
		return 0
	}
	return *input.Heading
}

func (input *ReportInput) accuracy() float64 {
	if input.Accuracy == nil {
		return 0
	}
	return *input.Accuracy
}
