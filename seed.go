package main

import "time"

// Seed collections are the in-memory defaults served when the durable
// backend is absent, unreachable, or holds no value for a key. Applications
// and reports start empty; the rest ship with representative data.

func seedTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func defaultAnnouncements() []Announcement {
	createdAt := seedTimestamp()
	return []Announcement{
		{
			ID:       "1",
			Title:    "Community Clean-Up Drive This Saturday",
			Category: "Events",
			Content: "Join us for a community clean-up drive this Saturday, March 16th, starting at 7:00 AM. " +
				"Let's work together to keep our barangay clean and beautiful. Bring your own gloves and trash bags. Snacks will be provided.",
			Date:      "2025-03-16",
			CreatedAt: createdAt,
		},
		{
			ID:       "2",
			Title:    "Free Medical Check-Up Available",
			Category: "Health",
			Content: "The barangay health center is offering free medical check-ups every Monday and Wednesday from 9:00 AM to 3:00 PM. " +
				"Services include blood pressure monitoring, blood sugar testing, and general consultation.",
			Date:      "2025-03-10",
			CreatedAt: createdAt,
		},
		{
			ID:       "3",
			Title:    "Flood Warning: Heavy Rains Expected",
			Category: "Emergency",
			Content: "PAGASA has issued a flood warning for our area. Heavy rains are expected in the next 48 hours. " +
				"Residents in low-lying areas are advised to prepare emergency kits and monitor updates from local authorities.",
			Date:      "2025-03-15",
			CreatedAt: createdAt,
		},
		{
			ID:       "4",
			Title:    "New Curfew Hours for Minors",
			Category: "Public Safety",
			Content: "Effective immediately, the curfew for minors (below 18 years old) is from 10:00 PM to 5:00 AM. " +
				"Parents and guardians are responsible for ensuring compliance. This is for the safety and welfare of our youth.",
			Date:      "2025-03-12",
			CreatedAt: createdAt,
		},
		{
			ID:       "5",
			Title:    "Livelihood Training Program Registration Open",
			Category: "Community Development",
			Content: "Registration is now open for our free livelihood training programs including baking, sewing, and basic electronics repair. " +
				"Limited slots available. Register at the barangay hall from March 18-25.",
			Date:      "2025-03-18",
			CreatedAt: createdAt,
		},
	}
}

func defaultHotlines() []Hotline {
	return []Hotline{
		{
			ID:          "1",
			Name:        "Barangay Emergency Response",
			Department:  "Emergency Services",
			Number:      "+63-123-456-7890",
			Description: "24/7 emergency response for all barangay-related emergencies",
		},
		{
			ID:          "2",
			Name:        "Police Station",
			Department:  "Police",
			Number:      "+63-123-456-7891",
			Description: "Local police station for security concerns and emergencies",
		},
		{
			ID:          "3",
			Name:        "Fire Department",
			Department:  "Fire",
			Number:      "+63-123-456-7892",
			Description: "Fire emergency hotline - available 24/7",
		},
		{
			ID:          "4",
			Name:        "Barangay Health Center",
			Department:  "Health",
			Number:      "+63-123-456-7893",
			Description: "Medical assistance and health-related concerns",
		},
		{
			ID:          "5",
			Name:        "Disaster Risk Reduction",
			Department:  "Disaster Response",
			Number:      "+63-123-456-7894",
			Description: "Disaster preparedness and response coordination",
		},
	}
}

func defaultOfficials() []Official {
	return []Official{
		{
			ID:       "1",
			Name:     "Maria Santos",
			Position: "Punong Barangay",
			Contact:  "+63-912-345-6781",
			Status:   "On Duty",
			Category: "Barangay Officials",
		},
		{
			ID:       "2",
			Name:     "Jose Ramirez",
			Position: "Barangay Kagawad",
			Contact:  "+63-912-345-6782",
			Status:   "On Duty",
			Category: "Barangay Officials",
		},
		{
			ID:       "3",
			Name:     "Ana Dela Cruz",
			Position: "Barangay Kagawad",
			Contact:  "+63-912-345-6783",
			Status:   "On Leave",
			Category: "Barangay Officials",
		},
		{
			ID:       "4",
			Name:     "Paolo Garcia",
			Position: "SK Chairperson",
			Contact:  "+63-912-345-6784",
			Status:   "On Site",
			Category: "SK",
		},
		{
			ID:       "5",
			Name:     "Liza Mendoza",
			Position: "Barangay Secretary",
			Contact:  "+63-912-345-6785",
			Status:   "On Duty",
			Category: "Staff",
		},
	}
}

// documentCatalog is the static list of document services offered at the
// barangay hall. It is served read-only and never persisted.
func documentCatalog() []Document {
	return []Document{
		{
			ID:           "1",
			Name:         "Barangay Clearance",
			Description:  "Official document certifying your good moral character and residency",
			Requirements: []string{"Valid ID", "Proof of Residency", "2x2 Photo"},
			Price:        50,
		},
		{
			ID:           "2",
			Name:         "Certificate of Residency",
			Description:  "Proof of residence in Barangay Matiao",
			Requirements: []string{"Valid ID", "Proof of Residency", "Barangay ID"},
			Price:        30,
		},
		{
			ID:           "3",
			Name:         "Certificate of Indigency",
			Description:  "Document for indigent individuals for assistance programs",
			Requirements: []string{"Valid ID", "Proof of Residency", "Income Statement"},
			Price:        0,
		},
		{
			ID:           "4",
			Name:         "Business Permit",
			Description:  "Authorization to operate a business in the barangay",
			Requirements: []string{"Business Registration", "Valid ID", "Proof of Residency", "Business Plan"},
			Price:        200,
		},
		{
			ID:           "5",
			Name:         "Community Tax Certificate",
			Description:  "Tax identification document for residents",
			Requirements: []string{"Valid ID", "Proof of Residency", "Income Statement"},
			Price:        75,
		},
	}
}
