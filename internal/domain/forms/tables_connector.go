package forms

func dsaConnectorConfig() TypeConfig {
	basic := []FieldDefinition{
		field("addressLocatable", "Address Locatable", ValueSelect, true, sectionBasicInformation, 1),
		field("addressRating", "Address Rating", ValueSelect, true, sectionBasicInformation, 2),
		field("officeSetup", "Office Setup", ValueSelect, false, sectionBasicInformation, 3),
		field("landmark1", "Landmark 1", ValueText, false, sectionBasicInformation, 4),
		field("landmark2", "Landmark 2", ValueText, false, sectionBasicInformation, 5),
	}

	details := []FieldDefinition{
		field("connectorName", "Connector Name", ValueText, true, "Connector Details", 1, FormTypePositive),
		field("connectorCode", "Connector Code", ValueText, false, "Connector Details", 2, FormTypePositive),
		field("connectorType", "Connector Type", ValueSelect, true, "Connector Details", 3, FormTypePositive),
		field("connectorExperience", "Experience (years)", ValueNumber, true, "Connector Details", 4, FormTypePositive),
		field("monthlyBusinessVolume", "Monthly Business Volume", ValueDecimal, false, "Connector Details", 5, FormTypePositive),
		field("activeLoanProducts", "Active Loan Products", ValueMultiSelect, false, "Connector Details", 6, FormTypePositive),
		field("premisesOwnership", "Premises Ownership", ValueSelect, false, "Connector Details", 7, FormTypePositive),
		field("associationStartDate", "Association Start Date", ValueDate, false, "Connector Details", 8, FormTypePositive),
	}

	mapping := mergeMapping(
		commonIgnores(),
		MappingTable{
			"addressLocatable": MapTo("address_locatable"),
			"addressRating":    MapTo("address_rating"),
			"officeSetup":      MapTo("office_setup"),
			"landmark1":        MapTo("landmark_1"),
			"landmark2":        MapTo("landmark_2"),

			"connectorName":         MapTo("connector_name"),
			"connectorCode":         MapTo("connector_code"),
			"connectorType":         MapTo("connector_type"),
			"connectorExperience":   MapTo("connector_experience"),
			"monthlyBusinessVolume": MapTo("monthly_business_volume"),
			"activeLoanProducts":    MapTo("active_loan_products"),
			"premisesOwnership":     MapTo("premises_ownership"),
			"associationStartDate":  MapTo("association_start_date"),

			// Legacy key from the first connector app release.
			"connectorExp": MapTo("connector_experience"),
		},
		commonClosingMapping(),
	)

	return TypeConfig{
		Fields:  concatFields(basic, details, closingFields()),
		Mapping: mapping,
		Table:   "dsa_connector_verification_reports",
		Required: map[string][]string{
			FormTypePositive:        {"connectorName", "connectorType", "connectorExperience", "finalStatus"},
			FormTypeShifted:         {"shiftedPeriod", "finalStatus"},
			FormTypeNSP:             {"finalStatus"},
			FormTypeEntryRestricted: {"entryRestrictionReason", "finalStatus"},
			FormTypeUntraceable:     {"contactPerson", "callRemark", "finalStatus"},
		},
		Rules: []ConditionalRule{
			{When: "premisesOwnership", Equals: "Rented", Expect: "officeSetup", Message: "officeSetup should be captured for rented connector premises"},
		},
		Relevant: map[string][]string{
			FormTypePositive:        {"connector_name", "connector_type", "connector_experience", "final_status"},
			FormTypeShifted:         {"shifted_period", "final_status"},
			FormTypeNSP:             {"final_status"},
			FormTypeEntryRestricted: {"entry_restriction_reason", "final_status"},
			FormTypeUntraceable:     {"contact_person", "call_remark", "final_status"},
		},
	}
}
