package tracker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func floatPointer(value float64) *float64 {
	return &value
}

func validReportInput() *ReportInput {
	return &ReportInput{
		Latitude:  floatPointer(51.5),
		Longitude: floatPointer(-0.1),
	}
}

func TestReportInputValidate(t *testing.T) {
	require.NoError(t, validReportInput().Validate())

	input := validReportInput()
	input.Speed = floatPointer(12.4)
	input.Heading = floatPointer(359.9)
	input.Accuracy = floatPointer(4)
	require.NoError(t, input.Validate())
}

func TestReportInputValidateRejects(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*ReportInput)
		field  string
	}{
		{"missing latitude", func(i *ReportInput) { i.Latitude = nil }, "latitude"},
		{"latitude too high", func(i *ReportInput) { i.Latitude = floatPointer(91) }, "latitude"},
		{"latitude too low", func(i *ReportInput) { i.Latitude = floatPointer(-90.1) }, "latitude"},
		{"missing longitude", func(i *ReportInput) { i.Longitude = nil }, "longitude"},
		{"longitude too high", func(i *ReportInput) { i.Longitude = floatPointer(180.5) }, "longitude"},
		{"longitude too low", func(i *ReportInput) { i.Longitude = floatPointer(-181) }, "longitude"},
		{"negative speed", func(i *ReportInput) { i.Speed = floatPointer(-1) }, "speed"},
		{"negative heading", func(i *ReportInput) { i.Heading = floatPointer(-10) }, "heading"},
		{"heading wraps", func(i *ReportInput) { i.Heading = floatPointer(360) }, "heading"},
		{"negative accuracy", func(i *ReportInput) { i.Accuracy = floatPointer(-0.1) }, "accuracy"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			input := validReportInput()
			testCase.mutate(input)

			err := input.Validate()
			require.Error(t, err)
			require.True(t, IsValidationError(err))

			var validationError *ValidationError
			require.ErrorAs(t, err, &validationError)
			require.Equal(t, testCase.field, validationError.Field)
		})
	}
}

func TestReportInputDefaults(t *testing.T) {
	input := validReportInput()

	require.Zero(t, input.speed())
	require.Zero(t, input.heading())
	require.Zero(t, input.accuracy())

	input.Speed = floatPointer(8.2)
	require.Equal(t, 8.2, input.speed())
}

func TestReportInputBoundaryValues(t *testing.T) {
	input := &ReportInput{
		Latitude:  floatPointer(90),
		Longitude: floatPointer(-180),
		Heading:   floatPointer(0),
		Speed:     floatPointer(0),
		Accuracy:  floatPointer(0),
	}
	require.NoError(t, input.Validate())

	input.Latitude = floatPointer(-90)
	input.Longitude = floatPointer(180)
	require.NoError(t, input.Validate())
}
