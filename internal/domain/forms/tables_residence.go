package forms

func residenceBasicFields() []FieldDefinition {
	return []FieldDefinition{
		field("customerName", "Customer Name", ValueText, true, sectionBasicInformation, 1),
		field("addressLocatable", "Address Locatable", ValueSelect, true, sectionBasicInformation, 2),
		field("addressRating", "Address Rating", ValueSelect, true, sectionBasicInformation, 3),
		field("houseStatus", "House Status", ValueSelect, false, sectionBasicInformation, 4),
		field("localityType", "Locality Type", ValueSelect, false, sectionBasicInformation, 5),
		field("addressStructure", "Address Structure", ValueText, false, sectionBasicInformation, 6),
		field("addressStructureColor", "Structure Color", ValueText, false, sectionBasicInformation, 7),
		field("doorColor", "Door Color", ValueText, false, sectionBasicInformation, 8),
		field("doorNamePlateStatus", "Door Name Plate", ValueSelect, false, sectionBasicInformation, 9),
		field("nameOnDoorPlate", "Name On Door Plate", ValueText, false, sectionBasicInformation, 10, FormTypePositive),
		field("societyNamePlateStatus", "Society Name Plate", ValueSelect, false, sectionBasicInformation, 11),
		field("nameOnSocietyBoard", "Name On Society Board", ValueText, false, sectionBasicInformation, 12, FormTypePositive),
		field("landmark1", "Landmark 1", ValueText, false, sectionBasicInformation, 13),
		field("landmark2", "Landmark 2", ValueText, false, sectionBasicInformation, 14),
	}
}

func residencePersonalFields() []FieldDefinition {
	return []FieldDefinition{
		field("metPersonName", "Met Person Name", ValueText, true, "Personal Details", 1, FormTypePositive, FormTypeNSP),
		field("metPersonRelation", "Met Person Relation", ValueSelect, true, "Personal Details", 2, FormTypePositive, FormTypeNSP),
		field("totalFamilyMembers", "Total Family Members", ValueNumber, true, "Personal Details", 3, FormTypePositive),
		field("totalEarningMembers", "Total Earning Members", ValueNumber, false, "Personal Details", 4, FormTypePositive),
		field("applicantDOB", "Applicant Date Of Birth", ValueDate, false, "Personal Details", 5, FormTypePositive),
		field("applicantAge", "Applicant Age", ValueNumber, false, "Personal Details", 6, FormTypePositive),
		field("workingStatus", "Working Status", ValueSelect, false, "Personal Details", 7, FormTypePositive),
		field("companyName", "Company Name", ValueText, false, "Personal Details", 8, FormTypePositive),
		field("stayingStatus", "Staying Status", ValueSelect, true, "Personal Details", 9, FormTypePositive),
		field("stayingPeriod", "Staying Period", ValueText, true, "Personal Details", 10, FormTypePositive),
		field("rentAmount", "Monthly Rent", ValueDecimal, false, "Personal Details", 11, FormTypePositive),
		field("approxArea", "Approx Area (sq ft)", ValueDecimal, false, "Personal Details", 12, FormTypePositive),
	}
}

func residenceDocumentFields() []FieldDefinition {
	return []FieldDefinition{
		field("documentShownStatus", "Document Shown", ValueSelect, false, sectionDocumentVerif, 1, FormTypePositive),
		field("documentType", "Document Type", ValueSelect, false, sectionDocumentVerif, 2, FormTypePositive),
	}
}

func residenceOccupantFields() []FieldDefinition {
	return []FieldDefinition{
		field("currentOccupantName", "Current Occupant Name", ValueText, false, "Occupant Details", 1, FormTypeNSP),
		field("occupantStayingPeriod", "Occupant Staying Period", ValueText, false, "Occupant Details", 2, FormTypeNSP),
	}
}

func residenceMapping() MappingTable {
	return mergeMapping(
		commonIgnores(),
		MappingTable{
			"customerName":           MapTo("customer_name"),
			"addressLocatable":       MapTo("address_locatable"),
			"addressRating":          MapTo("address_rating"),
			"houseStatus":            MapTo("house_status"),
			"localityType":           MapTo("locality_type"),
			"addressStructure":       MapTo("address_structure"),
			"addressStructureColor":  MapTo("address_structure_color"),
			"doorColor":              MapTo("door_color"),
			"doorNamePlateStatus":    MapTo("door_name_plate_status"),
			"nameOnDoorPlate":        MapTo("name_on_door_plate"),
			"societyNamePlateStatus": MapTo("society_name_plate_status"),
			"nameOnSocietyBoard":     MapTo("name_on_society_board"),
			"landmark1":              MapTo("landmark_1"),
			"landmark2":              MapTo("landmark_2"),

			"metPersonName":         MapTo("met_person_name"),
			"metPersonRelation":     MapTo("met_person_relation"),
			"totalFamilyMembers":    MapTo("total_family_members"),
			"totalEarningMembers":   MapTo("total_earning_members"),
			"applicantDOB":          MapTo("applicant_dob"),
			"applicantAge":          MapTo("applicant_age"),
			"workingStatus":         MapTo("working_status"),
			"companyName":           MapTo("company_name"),
			"stayingStatus":         MapTo("staying_status"),
			"stayingPeriod":         MapTo("staying_period"),
			"rentAmount":            MapTo("rent_amount"),
			"approxArea":            MapTo("approx_area"),
			"documentShownStatus":   MapTo("document_shown_status"),
			"documentType":          MapTo("document_type"),
			"currentOccupantName":   MapTo("current_occupant_name"),
			"occupantStayingPeriod": MapTo("occupant_staying_period"),

			// Legacy client keys; same columns as their canonical fields.
			"applicantName": MapTo("customer_name"),
			"metPerson":     MapTo("met_person_name"),
		},
		thirdPartyMapping(),
		commonClosingMapping(),
	)
}

func residenceConfig() TypeConfig {
	return TypeConfig{
		Fields: concatFields(
			residenceBasicFields(),
			residencePersonalFields(),
			residenceDocumentFields(),
			residenceOccupantFields(),
			thirdPartyFields(FormTypePositive, FormTypeShifted, FormTypeNSP),
			areaAssessmentFields(),
			closingFields(),
		),
		Mapping: residenceMapping(),
		Table:   "residence_verification_reports",
		Required: map[string][]string{
			FormTypePositive:        {"metPersonName", "metPersonRelation", "stayingStatus", "stayingPeriod", "totalFamilyMembers", "finalStatus"},
			FormTypeShifted:         {"shiftedPeriod", "currentLocation", "premisesStatus", "finalStatus"},
			FormTypeNSP:             {"metPersonName", "finalStatus"},
			FormTypeEntryRestricted: {"entryRestrictionReason", "securityPersonName", "finalStatus"},
			FormTypeUntraceable:     {"contactPerson", "callRemark", "finalStatus"},
		},
		Rules: []ConditionalRule{
			{When: "documentShownStatus", Equals: "Shown", Expect: "documentType", Message: "documentType should be captured when a document was shown"},
			{When: "stayingStatus", Equals: "On Rent", Expect: "rentAmount", Message: "rentAmount should be captured for tenants"},
			{When: "workingStatus", Equals: "Working", Expect: "companyName", Message: "companyName should be captured for working applicants"},
		},
		Relevant: map[string][]string{
			FormTypePositive:        {"met_person_name", "met_person_relation", "staying_status", "staying_period", "total_family_members", "document_shown_status", "final_status"},
			FormTypeShifted:         {"shifted_period", "current_location", "premises_status", "final_status"},
			FormTypeNSP:             {"met_person_name", "final_status"},
			FormTypeEntryRestricted: {"entry_restriction_reason", "security_person_name", "final_status"},
			FormTypeUntraceable:     {"contact_person", "call_remark", "final_status"},
		},
	}
}

// residenceCumOfficeConfig extends the residence schema with the office-use
// block captured when the premises double as a workplace.
func residenceCumOfficeConfig() TypeConfig {
	officeUse := []FieldDefinition{
		field("officeName", "Office Name", ValueText, false, "Office Use Details", 1, FormTypePositive),
		field("officeActivity", "Office Activity", ValueSelect, false, "Office Use Details", 2, FormTypePositive),
		field("applicantDesignation", "Applicant Designation", ValueText, false, "Office Use Details", 3, FormTypePositive),
		field("staffStrength", "Staff Strength", ValueNumber, false, "Office Use Details", 4, FormTypePositive),
	}

	cfg := residenceConfig()
	cfg.Fields = concatFields(
		residenceBasicFields(),
		residencePersonalFields(),
		officeUse,
		residenceDocumentFields(),
		residenceOccupantFields(),
		thirdPartyFields(FormTypePositive, FormTypeShifted, FormTypeNSP),
		areaAssessmentFields(),
		closingFields(),
	)
	cfg.Mapping = mergeMapping(cfg.Mapping, MappingTable{
		"officeName":           MapTo("office_name"),
		"officeActivity":       MapTo("office_activity"),
		"applicantDesignation": MapTo("applicant_designation"),
		"staffStrength":        MapTo("staff_strength"),
	})
	cfg.Table = "residence_cum_office_verification_reports"
	return cfg
}
