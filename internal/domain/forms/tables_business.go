package forms

func businessConfig() TypeConfig {
	basic := []FieldDefinition{
		field("addressLocatable", "Address Locatable", ValueSelect, true, sectionBasicInformation, 1),
		field("addressRating", "Address Rating", ValueSelect, true, sectionBasicInformation, 2),
		field("businessStatus", "Business Status", ValueSelect, false, sectionBasicInformation, 3),
		field("localityType", "Locality Type", ValueSelect, false, sectionBasicInformation, 4),
		field("addressStructure", "Address Structure", ValueText, false, sectionBasicInformation, 5),
		field("businessBoardStatus", "Business Board", ValueSelect, false, sectionBasicInformation, 6),
		field("nameOnBoard", "Name On Board", ValueText, false, sectionBasicInformation, 7),
		field("landmark1", "Landmark 1", ValueText, false, sectionBasicInformation, 8),
		field("landmark2", "Landmark 2", ValueText, false, sectionBasicInformation, 9),
	}

	details := []FieldDefinition{
		field("businessName", "Business Name", ValueText, true, "Business Details", 1, FormTypePositive),
		field("natureOfBusiness", "Nature Of Business", ValueSelect, true, "Business Details", 2, FormTypePositive),
		field("establishmentPeriod", "Establishment Period", ValueText, true, "Business Details", 3, FormTypePositive),
		field("applicantDesignation", "Applicant Designation", ValueText, false, "Business Details", 4, FormTypePositive),
		field("ownershipStatus", "Ownership Status", ValueSelect, false, "Business Details", 5, FormTypePositive),
		field("businessActivity", "Business Activity Seen", ValueSelect, false, "Business Details", 6, FormTypePositive),
		field("staffStrength", "Staff Strength", ValueNumber, false, "Business Details", 7, FormTypePositive),
		field("staffSeen", "Staff Seen", ValueNumber, false, "Business Details", 8, FormTypePositive),
		field("stockLevel", "Stock Level", ValueSelect, false, "Business Details", 9, FormTypePositive),
		field("metPersonName", "Met Person Name", ValueText, false, "Business Details", 10, FormTypePositive, FormTypeNSP),
		field("metPersonDesignation", "Met Person Designation", ValueText, false, "Business Details", 11, FormTypePositive, FormTypeNSP),
	}

	documents := []FieldDefinition{
		field("documentShownStatus", "Document Shown", ValueSelect, false, sectionDocumentVerif, 1, FormTypePositive),
		field("documentType", "Document Type", ValueSelect, false, sectionDocumentVerif, 2, FormTypePositive),
	}

	mapping := mergeMapping(
		commonIgnores(),
		MappingTable{
			"addressLocatable":    MapTo("address_locatable"),
			"addressRating":       MapTo("address_rating"),
			"businessStatus":      MapTo("business_status"),
			"localityType":        MapTo("locality_type"),
			"addressStructure":    MapTo("address_structure"),
			"businessBoardStatus": MapTo("business_board_status"),
			"nameOnBoard":         MapTo("name_on_board"),
			"landmark1":           MapTo("landmark_1"),
			"landmark2":           MapTo("landmark_2"),

			"businessName":         MapTo("business_name"),
			"natureOfBusiness":     MapTo("nature_of_business"),
			"establishmentPeriod":  MapTo("establishment_period"),
			"applicantDesignation": MapTo("applicant_designation"),
			"ownershipStatus":      MapTo("ownership_status"),
			"businessActivity":     MapTo("business_activity"),
			"staffStrength":        MapTo("staff_strength"),
			"staffSeen":            MapTo("staff_seen"),
			"stockLevel":           MapTo("stock_level"),
			"metPersonName":        MapTo("met_person_name"),
			"metPersonDesignation": MapTo("met_person_designation"),
			"documentShownStatus":  MapTo("document_shown_status"),
			"documentType":         MapTo("document_type"),
		},
		thirdPartyMapping(),
		commonClosingMapping(),
	)

	return TypeConfig{
		Fields: concatFields(
			basic,
			details,
			documents,
			thirdPartyFields(FormTypePositive, FormTypeShifted, FormTypeNSP),
			areaAssessmentFields(),
			closingFields(),
		),
		Mapping: mapping,
		Table:   "business_verification_reports",
		Required: map[string][]string{
			FormTypePositive:        {"businessName", "natureOfBusiness", "establishmentPeriod", "finalStatus"},
			FormTypeShifted:         {"shiftedPeriod", "currentLocation", "finalStatus"},
			FormTypeNSP:             {"metPersonName", "finalStatus"},
			FormTypeEntryRestricted: {"entryRestrictionReason", "securityPersonName", "finalStatus"},
			FormTypeUntraceable:     {"contactPerson", "callRemark", "finalStatus"},
		},
		Rules: []ConditionalRule{
			{When: "documentShownStatus", Equals: "Shown", Expect: "documentType", Message: "documentType should be captured when a document was shown"},
			{When: "ownershipStatus", Equals: "Rented", Expect: "establishmentPeriod", Message: "establishmentPeriod should be captured for rented premises"},
		},
		Relevant: map[string][]string{
			FormTypePositive:        {"business_name", "nature_of_business", "establishment_period", "final_status"},
			FormTypeShifted:         {"shifted_period", "current_location", "final_status"},
			FormTypeNSP:             {"met_person_name", "final_status"},
			FormTypeEntryRestricted: {"entry_restriction_reason", "security_person_name", "final_status"},
			FormTypeUntraceable:     {"contact_person", "call_remark", "final_status"},
		},
	}
}

func builderConfig() TypeConfig {
	basic := []FieldDefinition{
		field("addressLocatable", "Address Locatable", ValueSelect, true, sectionBasicInformation, 1),
		field("addressRating", "Address Rating", ValueSelect, true, sectionBasicInformation, 2),
		field("siteStatus", "Site Status", ValueSelect, false, sectionBasicInformation, 3),
		field("localityType", "Locality Type", ValueSelect, false, sectionBasicInformation, 4),
		field("landmark1", "Landmark 1", ValueText, false, sectionBasicInformation, 5),
		field("landmark2", "Landmark 2", ValueText, false, sectionBasicInformation, 6),
	}

	details := []FieldDefinition{
		field("builderName", "Builder Name", ValueText, true, "Builder Details", 1, FormTypePositive),
		field("projectName", "Project Name", ValueText, true, "Builder Details", 2, FormTypePositive),
		field("constructionStatus", "Construction Status", ValueSelect, false, "Builder Details", 3, FormTypePositive),
		field("totalWings", "Total Wings", ValueNumber, false, "Builder Details", 4, FormTypePositive),
		field("totalFloors", "Total Floors", ValueNumber, false, "Builder Details", 5, FormTypePositive),
		field("totalFlats", "Total Flats", ValueNumber, false, "Builder Details", 6, FormTypePositive),
		field("bookingStatus", "Booking Status", ValueSelect, false, "Builder Details", 7, FormTypePositive),
		field("metPersonName", "Met Person Name", ValueText, false, "Builder Details", 8, FormTypePositive, FormTypeNSP),
		field("metPersonDesignation", "Met Person Designation", ValueText, false, "Builder Details", 9, FormTypePositive, FormTypeNSP),
	}

	mapping := mergeMapping(
		commonIgnores(),
		MappingTable{
			"addressLocatable": MapTo("address_locatable"),
			"addressRating":    MapTo("address_rating"),
			"siteStatus":       MapTo("site_status"),
			"localityType":     MapTo("locality_type"),
			"landmark1":        MapTo("landmark_1"),
			"landmark2":        MapTo("landmark_2"),

			"builderName":          MapTo("builder_name"),
			"projectName":          MapTo("project_name"),
			"constructionStatus":   MapTo("construction_status"),
			"totalWings":           MapTo("total_wings"),
			"totalFloors":          MapTo("total_floors"),
			"totalFlats":           MapTo("total_flats"),
			"bookingStatus":        MapTo("booking_status"),
			"metPersonName":        MapTo("met_person_name"),
			"metPersonDesignation": MapTo("met_person_designation"),
		},
		commonClosingMapping(),
	)

	return TypeConfig{
		Fields: concatFields(basic, details, closingFields()),
		Mapping: mapping,
		Table:   "builder_verification_reports",
		Required: map[string][]string{
			FormTypePositive:        {"builderName", "projectName", "finalStatus"},
			FormTypeShifted:         {"shiftedPeriod", "finalStatus"},
			FormTypeNSP:             {"finalStatus"},
			FormTypeEntryRestricted: {"entryRestrictionReason", "finalStatus"},
			FormTypeUntraceable:     {"contactPerson", "callRemark", "finalStatus"},
		},
		Rules: []ConditionalRule{
			{When: "constructionStatus", Equals: "Under Construction", Expect: "totalWings", Message: "totalWings should be captured for sites under construction"},
		},
		Relevant: map[string][]string{
			FormTypePositive:        {"builder_name", "project_name", "final_status"},
			FormTypeShifted:         {"shifted_period", "final_status"},
			FormTypeNSP:             {"final_status"},
			FormTypeEntryRestricted: {"entry_restriction_reason", "final_status"},
			FormTypeUntraceable:     {"contact_person", "call_remark", "final_status"},
		},
	}
}
