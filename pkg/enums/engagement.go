package enums

import "fmt"

// InquiryStatus represents the lifecycle of a customer inquiry.
type InquiryStatus string

const (
	InquiryStatusPending InquiryStatus = "pending"
	InquiryStatusReplied InquiryStatus = "replied"
	InquiryStatusClosed  InquiryStatus = "closed"
)

var validInquiryStatuses = []InquiryStatus{
	InquiryStatusPending,
	InquiryStatusReplied,
	InquiryStatusClosed,
}

// String implements fmt.Stringer.
func (s InquiryStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known InquiryStatus.
func (s InquiryStatus) IsValid() bool {
	for _, candidate := range validInquiryStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseInquiryStatus converts raw input into an InquiryStatus.
func ParseInquiryStatus(value string) (InquiryStatus, error) {
	for _, candidate := range validInquiryStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid inquiry status %q", value)
}

// TestDriveStatus represents the lifecycle of a scheduled test drive.
type TestDriveStatus string

const (
	TestDriveStatusPending   TestDriveStatus = "pending"
	TestDriveStatusConfirmed TestDriveStatus = "confirmed"
	TestDriveStatusCancelled TestDriveStatus = "cancelled"
	TestDriveStatusCompleted TestDriveStatus = "completed"
)

var validTestDriveStatuses = []TestDriveStatus{
	TestDriveStatusPending,
	TestDriveStatusConfirmed,
	TestDriveStatusCancelled,
	TestDriveStatusCompleted,
}

// String implements fmt.Stringer.
func (s TestDriveStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known TestDriveStatus.
func (s TestDriveStatus) IsValid() bool {
	for _, candidate := range validTestDriveStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseTestDriveStatus converts raw input into a TestDriveStatus.
func ParseTestDriveStatus(value string) (TestDriveStatus, error) {
	for _, candidate := range validTestDriveStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid test drive status %q", value)
}
