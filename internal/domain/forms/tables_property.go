package forms

func nocConfig() TypeConfig {
	basic := []FieldDefinition{
		field("addressLocatable", "Address Locatable", ValueSelect, true, sectionBasicInformation, 1),
		field("addressRating", "Address Rating", ValueSelect, true, sectionBasicInformation, 2),
		field("localityType", "Locality Type", ValueSelect, false, sectionBasicInformation, 3),
		field("landmark1", "Landmark 1", ValueText, false, sectionBasicInformation, 4),
		field("landmark2", "Landmark 2", ValueText, false, sectionBasicInformation, 5),
	}

	details := []FieldDefinition{
		field("societyName", "Society Name", ValueText, true, "NOC Details", 1, FormTypePositive),
		field("flatNumber", "Flat Number", ValueText, false, "NOC Details", 2, FormTypePositive),
		field("metPersonName", "Met Person Name", ValueText, true, "NOC Details", 3, FormTypePositive),
		field("metPersonDesignation", "Met Person Designation", ValueText, false, "NOC Details", 4, FormTypePositive),
		field("nocStatus", "NOC Status", ValueSelect, true, "NOC Details", 5, FormTypePositive),
		field("dueAmount", "Outstanding Dues", ValueDecimal, false, "NOC Details", 6, FormTypePositive),
		field("nocIssueDate", "NOC Issue Date", ValueDate, false, "NOC Details", 7, FormTypePositive),
	}

	mapping := mergeMapping(
		commonIgnores(),
		MappingTable{
			"addressLocatable": MapTo("address_locatable"),
			"addressRating":    MapTo("address_rating"),
			"localityType":     MapTo("locality_type"),
			"landmark1":        MapTo("landmark_1"),
			"landmark2":        MapTo("landmark_2"),

			"societyName":          MapTo("society_name"),
			"flatNumber":           MapTo("flat_number"),
			"metPersonName":        MapTo("met_person_name"),
			"metPersonDesignation": MapTo("met_person_designation"),
			"nocStatus":            MapTo("noc_status"),
			"dueAmount":            MapTo("due_amount"),
			"nocIssueDate":         MapTo("noc_issue_date"),
		},
		commonClosingMapping(),
	)

	return TypeConfig{
		Fields:  concatFields(basic, details, closingFields()),
		Mapping: mapping,
		Table:   "noc_verification_reports",
		Required: map[string][]string{
			FormTypePositive:        {"societyName", "metPersonName", "nocStatus", "finalStatus"},
			FormTypeShifted:         {"shiftedPeriod", "finalStatus"},
			FormTypeNSP:             {"finalStatus"},
			FormTypeEntryRestricted: {"entryRestrictionReason", "finalStatus"},
			FormTypeUntraceable:     {"contactPerson", "callRemark", "finalStatus"},
		},
		Rules: []ConditionalRule{
			{When: "nocStatus", Equals: "Issued", Expect: "nocIssueDate", Message: "nocIssueDate should be captured when the NOC was issued"},
		},
		Relevant: map[string][]string{
			FormTypePositive:        {"society_name", "met_person_name", "noc_status", "final_status"},
			FormTypeShifted:         {"shifted_period", "final_status"},
			FormTypeNSP:             {"final_status"},
			FormTypeEntryRestricted: {"entry_restriction_reason", "final_status"},
			FormTypeUntraceable:     {"contact_person", "call_remark", "final_status"},
		},
	}
}

func propertyAPFConfig() TypeConfig {
	basic := []FieldDefinition{
		field("addressLocatable", "Address Locatable", ValueSelect, true, sectionBasicInformation, 1),
		field("addressRating", "Address Rating", ValueSelect, true, sectionBasicInformation, 2),
		field("localityType", "Locality Type", ValueSelect, false, sectionBasicInformation, 3),
		field("landmark1", "Landmark 1", ValueText, false, sectionBasicInformation, 4),
		field("landmark2", "Landmark 2", ValueText, false, sectionBasicInformation, 5),
	}

	details := []FieldDefinition{
		field("propertyType", "Property Type", ValueSelect, true, "Property Details", 1, FormTypePositive),
		field("projectName", "Project Name", ValueText, true, "Property Details", 2, FormTypePositive),
		field("builderName", "Builder Name", ValueText, false, "Property Details", 3, FormTypePositive),
		field("apfStatus", "APF Status", ValueSelect, true, "Property Details", 4, FormTypePositive),
		field("constructionStatus", "Construction Status", ValueSelect, false, "Property Details", 5, FormTypePositive),
		field("totalWings", "Total Wings", ValueNumber, false, "Property Details", 6, FormTypePositive),
		field("totalFlats", "Total Flats", ValueNumber, false, "Property Details", 7, FormTypePositive),
		field("approvedBankNames", "Approved Bank Names", ValueMultiSelect, false, "Property Details", 8, FormTypePositive),
	}

	mapping := mergeMapping(
		commonIgnores(),
		MappingTable{
			"addressLocatable": MapTo("address_locatable"),
			"addressRating":    MapTo("address_rating"),
			"localityType":     MapTo("locality_type"),
			"landmark1":        MapTo("landmark_1"),
			"landmark2":        MapTo("landmark_2"),

			"propertyType":       MapTo("property_type"),
			"projectName":        MapTo("project_name"),
			"builderName":        MapTo("builder_name"),
			"apfStatus":          MapTo("apf_status"),
			"constructionStatus": MapTo("construction_status"),
			"totalWings":         MapTo("total_wings"),
			"totalFlats":         MapTo("total_flats"),
			"approvedBankNames":  MapTo("approved_bank_names"),
		},
		commonClosingMapping(),
	)

	return TypeConfig{
		Fields:  concatFields(basic, details, closingFields()),
		Mapping: mapping,
		Table:   "property_apf_verification_reports",
		Required: map[string][]string{
			FormTypePositive:        {"propertyType", "projectName", "apfStatus", "finalStatus"},
			FormTypeShifted:         {"shiftedPeriod", "finalStatus"},
			FormTypeNSP:             {"finalStatus"},
			FormTypeEntryRestricted: {"entryRestrictionReason", "finalStatus"},
			FormTypeUntraceable:     {"contactPerson", "callRemark", "finalStatus"},
		},
		Rules: []ConditionalRule{
			{When: "apfStatus", Equals: "Approved", Expect: "approvedBankNames", Message: "approvedBankNames should list the banks backing an approved APF"},
		},
		Relevant: map[string][]string{
			FormTypePositive:        {"property_type", "project_name", "apf_status", "final_status"},
			FormTypeShifted:         {"shifted_period", "final_status"},
			FormTypeNSP:             {"final_status"},
			FormTypeEntryRestricted: {"entry_restriction_reason", "final_status"},
			FormTypeUntraceable:     {"contact_person", "call_remark", "final_status"},
		},
	}
}
