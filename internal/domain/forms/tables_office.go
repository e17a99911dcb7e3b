package forms

func officeBasicFields() []FieldDefinition {
	return []FieldDefinition{
		field("addressLocatable", "Address Locatable", ValueSelect, true, sectionBasicInformation, 1),
		field("addressRating", "Address Rating", ValueSelect, true, sectionBasicInformation, 2),
		field("officeStatus", "Office Status", ValueSelect, false, sectionBasicInformation, 3),
		field("localityType", "Locality Type", ValueSelect, false, sectionBasicInformation, 4),
		field("addressStructure", "Address Structure", ValueText, false, sectionBasicInformation, 5),
		field("companyNamePlateStatus", "Company Name Plate", ValueSelect, false, sectionBasicInformation, 6),
		field("nameOnBoard", "Name On Board", ValueText, false, sectionBasicInformation, 7),
		field("landmark1", "Landmark 1", ValueText, false, sectionBasicInformation, 8),
		field("landmark2", "Landmark 2", ValueText, false, sectionBasicInformation, 9),
	}
}

func officeDetailFields() []FieldDefinition {
	return []FieldDefinition{
		field("metPersonName", "Met Person Name", ValueText, true, "Office Details", 1, FormTypePositive, FormTypeNSP),
		field("metPersonDesignation", "Met Person Designation", ValueText, true, "Office Details", 2, FormTypePositive, FormTypeNSP),
		field("applicantDesignation", "Applicant Designation", ValueText, true, "Office Details", 3, FormTypePositive),
		field("workingPeriod", "Working Period", ValueText, true, "Office Details", 4, FormTypePositive),
		field("workingStatus", "Working Status", ValueSelect, false, "Office Details", 5, FormTypePositive),
		field("officeType", "Office Type", ValueSelect, false, "Office Details", 6, FormTypePositive),
		field("companyNatureOfBusiness", "Nature Of Business", ValueSelect, false, "Office Details", 7, FormTypePositive),
		field("staffStrength", "Staff Strength", ValueNumber, true, "Office Details", 8, FormTypePositive),
		field("staffSeen", "Staff Seen", ValueNumber, false, "Office Details", 9, FormTypePositive),
	}
}

func officeMapping() MappingTable {
	return mergeMapping(
		commonIgnores(),
		MappingTable{
			"addressLocatable":       MapTo("address_locatable"),
			"addressRating":          MapTo("address_rating"),
			"officeStatus":           MapTo("office_status"),
			"localityType":           MapTo("locality_type"),
			"addressStructure":       MapTo("address_structure"),
			"companyNamePlateStatus": MapTo("company_name_plate_status"),
			"nameOnBoard":            MapTo("name_on_board"),
			"landmark1":              MapTo("landmark_1"),
			"landmark2":              MapTo("landmark_2"),

			"metPersonName":           MapTo("met_person_name"),
			"metPersonDesignation":    MapTo("met_person_designation"),
			"applicantDesignation":    MapTo("applicant_designation"),
			"workingPeriod":           MapTo("working_period"),
			"workingStatus":           MapTo("working_status"),
			"officeType":              MapTo("office_type"),
			"companyNatureOfBusiness": MapTo("company_nature_of_business"),
			"staffStrength":           MapTo("staff_strength"),
			"staffSeen":               MapTo("staff_seen"),
			"documentShownStatus":     MapTo("document_shown_status"),
			"documentType":            MapTo("document_type"),

			// Legacy typo key still sent by pre-2023 clients.
			"staffStrengh": MapTo("staff_strength"),
		},
		thirdPartyMapping(),
		commonClosingMapping(),
	)
}

func officeConfig() TypeConfig {
	documentFields := []FieldDefinition{
		field("documentShownStatus", "Document Shown", ValueSelect, false, sectionDocumentVerif, 1, FormTypePositive),
		field("documentType", "Document Type", ValueSelect, false, sectionDocumentVerif, 2, FormTypePositive),
	}

	return TypeConfig{
		Fields: concatFields(
			officeBasicFields(),
			officeDetailFields(),
			documentFields,
			thirdPartyFields(FormTypePositive, FormTypeShifted, FormTypeNSP),
			areaAssessmentFields(),
			closingFields(),
		),
		Mapping: officeMapping(),
		Table:   "office_verification_reports",
		Required: map[string][]string{
			FormTypePositive:        {"metPersonName", "metPersonDesignation", "applicantDesignation", "workingPeriod", "staffStrength", "finalStatus"},
			FormTypeShifted:         {"shiftedPeriod", "currentLocation", "finalStatus"},
			FormTypeNSP:             {"metPersonName", "finalStatus"},
			FormTypeEntryRestricted: {"entryRestrictionReason", "securityPersonName", "finalStatus"},
			FormTypeUntraceable:     {"contactPerson", "callRemark", "finalStatus"},
		},
		Rules: []ConditionalRule{
			{When: "documentShownStatus", Equals: "Shown", Expect: "documentType", Message: "documentType should be captured when a document was shown"},
			{When: "companyNatureOfBusiness", Equals: "Other", Expect: "otherObservation", Message: "otherObservation should describe the business when nature is Other"},
		},
		Relevant: map[string][]string{
			FormTypePositive:        {"met_person_name", "met_person_designation", "applicant_designation", "working_period", "staff_strength", "final_status"},
			FormTypeShifted:         {"shifted_period", "current_location", "final_status"},
			FormTypeNSP:             {"met_person_name", "final_status"},
			FormTypeEntryRestricted: {"entry_restriction_reason", "security_person_name", "final_status"},
			FormTypeUntraceable:     {"contact_person", "call_remark", "final_status"},
		},
	}
}
