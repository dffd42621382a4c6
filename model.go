package main

// ResourceType names one of the portal's data domains. It is the key
// namespace for both collection storage and last-update timestamps.
type ResourceType string

const (
	TypeAnnouncements ResourceType = "announcements"
	TypeHotlines      ResourceType = "hotlines"
	TypeOfficials     ResourceType = "officials"
	TypeApplications  ResourceType = "applications"
	TypeReports       ResourceType = "reports"
)

// ResourceTypes lists every known resource type.
var ResourceTypes = []ResourceType{
	TypeAnnouncements,
	TypeHotlines,
	TypeOfficials,
	TypeApplications,
	TypeReports,
}

// Application and report status values. New submissions always start Pending.
const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusCompleted = "Completed"
	StatusRejected  = "Rejected"
	StatusResolved  = "Resolved"
)

// Announcement is a barangay-wide notice shown on the public site.
// Announcements are displayed newest-first, so creation prepends.
type Announcement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
	PosterURL string `json:"posterUrl,omitempty"`
}

// Hotline is an emergency or service contact number.
type Hotline struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Number      string `json:"number"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Official is a member of the barangay council or staff.
type Official struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Contact  string `json:"contact"`
	Status   string `json:"status"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// Application is a resident's request for a barangay document.
type Application struct {
	ID            string `json:"id"`
	FullName      string `json:"fullName"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
	DocumentType  string `json:"documentType"`
	Purpose       string `json:"purpose"`
	Status        string `json:"status"`
	SubmittedAt   string `json:"submittedAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// Report is a resident-submitted community issue.
type Report struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	IssueType   string `json:"issueType"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submittedAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// CreateAnnouncementRequest is the payload for posting a new announcement.
type CreateAnnouncementRequest struct {
	Title     string `json:"title"`
	Category  string `json:"category"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	PosterURL string `json:"posterUrl,omitempty"`
}

// CreateHotlineRequest is the payload for adding a hotline.
type CreateHotlineRequest struct {
	Name        string `json:"name"`
	Department  string `json:"department"`
	Number      string `json:"number"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// CreateOfficialRequest is the payload for adding an official.
type CreateOfficialRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Contact  string `json:"contact"`
	Status   string `json:"status"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// CreateApplicationRequest is the payload for submitting a document
// application. Status and timestamps are assigned server-side.
type CreateApplicationRequest struct {
	FullName      string `json:"fullName"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
	DocumentType  string `json:"documentType"`
	Purpose       string `json:"purpose"`
}

// CreateReportRequest is the payload for submitting an issue report.
type CreateReportRequest struct {
	Name        string `json:"name,omitempty"`
	IssueType   string `json:"issueType"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Document describes a document service offered at the barangay hall.
// The catalog is static; applications reference a document by name.
type Document struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Price        float64  `json:"price"`
}
