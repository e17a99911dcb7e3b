package forms

// Section titles shared across verification types.
const (
	sectionBasicInformation = "Basic Information"
	sectionDocumentVerif    = "Document Verification"
	sectionShiftedDetails   = "Shifted Details"
	sectionEntryRestriction = "Entry Restriction Details"
	sectionUntraceable      = "Untraceable Details"
	sectionThirdParty       = "Third Party Confirmation"
	sectionAreaAssessment   = "Area Assessment"
	sectionFinalStatus      = "Final Status"
)

// DefaultConfig returns the builtin schema, mapping and validation tables.
// The tables are versioned with the code; deployments layer overrides on top
// via the mapping profile, never by mutating these.
func DefaultConfig() Config {
	return Config{
		Types: map[string]TypeConfig{
			TypeResidence:          residenceConfig(),
			TypeResidenceCumOffice: residenceCumOfficeConfig(),
			TypeOffice:             officeConfig(),
			TypeBusiness:           businessConfig(),
			TypeBuilder:            builderConfig(),
			TypeNOC:                nocConfig(),
			TypePropertyAPF:        propertyAPFConfig(),
			TypeDSAConnector:       dsaConnectorConfig(),
		},
		Aliases: map[string]string{
			"RESIDENCE-CUM-OFFICE": TypeResidenceCumOffice,
			"PROPERTY-APF":         TypePropertyAPF,
			"APF":                  TypePropertyAPF,
			"DSA-CONNECTOR":        TypeDSAConnector,
			"DSA_DST_CONNECTOR":    TypeDSAConnector,
		},
		DefaultTable: "verification_reports",
		BaseRequired: map[string][]string{
			FormTypePositive:        {"metPersonName", "finalStatus"},
			FormTypeShifted:         {"shiftedPeriod", "finalStatus"},
			FormTypeNSP:             {"finalStatus"},
			FormTypeEntryRestricted: {"entryRestrictionReason", "finalStatus"},
			FormTypeUntraceable:     {"contactPerson", "callRemark", "finalStatus"},
		},
		Labels: map[string]string{
			FormTypePositive:        "Positive",
			FormTypeShifted:         "Shifted",
			FormTypeNSP:             "NSP",
			FormTypeEntryRestricted: "Entry Restricted",
			FormTypeUntraceable:     "Untraceable",
		},
		SectionDescriptions: map[string]string{
			sectionBasicInformation: "Address identification and locality details captured at the premises",
			sectionDocumentVerif:    "Documents sighted during the visit",
			sectionShiftedDetails:   "Where and when the subject moved",
			sectionEntryRestriction: "Why the premises could not be entered",
			sectionUntraceable:      "Contact attempts for an unlocatable address",
			sectionThirdParty:       "Neighbourhood confirmation of the findings",
			sectionAreaAssessment:   "Agent's read on the surrounding area",
			sectionFinalStatus:      "Agent's overall recommendation",
			"Personal Details":      "Applicant particulars confirmed in person",
			"Occupant Details":      "Who occupies the premises now",
			"Office Details":        "Employment and workplace particulars",
			"Office Use Details":    "How the office portion of the premises is used",
			"Business Details":      "Business operations observed at the premises",
			"Builder Details":       "Builder and project particulars",
			"NOC Details":           "No-objection certificate particulars",
			"Property Details":      "Property and approval particulars",
			"Connector Details":     "Connector engagement and business volume",
		},
	}
}

// field builds the common case where ID and Name are equal.
func field(name, label string, vt ValueType, required bool, section string, order int, formTypes ...string) FieldDefinition {
	return FieldDefinition{
		ID:        name,
		Name:      name,
		Label:     label,
		Type:      vt,
		Required:  required,
		Section:   section,
		Order:     order,
		FormTypes: formTypes,
	}
}

// mergeMapping overlays tables left to right into a fresh table.
func mergeMapping(tables ...MappingTable) MappingTable {
	out := make(MappingTable)
	for _, table := range tables {
		for key, rule := range table {
			out[key] = rule
		}
	}
	return out
}

// commonIgnores drops the UI-only keys every mobile form submits: media,
// client ids, capture metadata and the outcome flag the server recomputes
// from the form type.
func commonIgnores() MappingTable {
	return MappingTable{
		"images":         Ignored,
		"selfieImages":   Ignored,
		"documentImages": Ignored,
		"verificationId": Ignored,
		"caseId":         Ignored,
		"capturedAt":     Ignored,
		"submittedAt":    Ignored,
		"localTime":      Ignored,
		"geoLocation":    Ignored,
		"isFormFilled":   Ignored,
		"outcome":        Ignored,
	}
}

// commonClosingMapping covers the tail sections shared by every type.
func commonClosingMapping() MappingTable {
	return MappingTable{
		"contactPerson":          MapTo("contact_person"),
		"callRemark":             MapTo("call_remark"),
		"entryRestrictionReason": MapTo("entry_restriction_reason"),
		"securityPersonName":     MapTo("security_person_name"),
		"shiftedPeriod":          MapTo("shifted_period"),
		"currentLocation":        MapTo("current_location"),
		"premisesStatus":         MapTo("premises_status"),
		"politicalConnection":    MapTo("political_connection"),
		"dominatedArea":          MapTo("dominated_area"),
		"feedbackFromNeighbour":  MapTo("feedback_from_neighbour"),
		"otherObservation":       MapTo("other_observation"),
		"finalStatus":            MapTo("final_status"),
		"holdReason":             MapTo("hold_reason"),
		"verificationDate":       MapTo("verification_date"),
	}
}

// thirdPartyFields is the TPC block reused by the premises-visit types.
func thirdPartyFields(formTypes ...string) []FieldDefinition {
	return []FieldDefinition{
		field("tpcMetPerson1", "TPC 1 - Met Person", ValueSelect, false, sectionThirdParty, 1, formTypes...),
		field("tpcName1", "TPC 1 - Name", ValueText, false, sectionThirdParty, 2, formTypes...),
		field("tpcConfirmation1", "TPC 1 - Confirmation", ValueSelect, false, sectionThirdParty, 3, formTypes...),
		field("tpcMetPerson2", "TPC 2 - Met Person", ValueSelect, false, sectionThirdParty, 4, formTypes...),
		field("tpcName2", "TPC 2 - Name", ValueText, false, sectionThirdParty, 5, formTypes...),
		field("tpcConfirmation2", "TPC 2 - Confirmation", ValueSelect, false, sectionThirdParty, 6, formTypes...),
	}
}

func thirdPartyMapping() MappingTable {
	return MappingTable{
		"tpcMetPerson1":    MapTo("tpc_met_person_1"),
		"tpcName1":         MapTo("tpc_name_1"),
		"tpcConfirmation1": MapTo("tpc_confirmation_1"),
		"tpcMetPerson2":    MapTo("tpc_met_person_2"),
		"tpcName2":         MapTo("tpc_name_2"),
		"tpcConfirmation2": MapTo("tpc_confirmation_2"),
	}
}

// closingFields are the per-outcome tail sections shared by every type:
// shifted, entry-restricted and untraceable detail blocks plus the final
// status block.
func closingFields() []FieldDefinition {
	return []FieldDefinition{
		field("shiftedPeriod", "Shifted Period", ValueText, true, sectionShiftedDetails, 1, FormTypeShifted),
		field("currentLocation", "Current Location", ValueText, false, sectionShiftedDetails, 2, FormTypeShifted),
		field("premisesStatus", "Premises Status", ValueSelect, false, sectionShiftedDetails, 3, FormTypeShifted),

		field("entryRestrictionReason", "Entry Restriction Reason", ValueSelect, true, sectionEntryRestriction, 1, FormTypeEntryRestricted),
		field("securityPersonName", "Security Person Name", ValueText, false, sectionEntryRestriction, 2, FormTypeEntryRestricted),

		field("contactPerson", "Contact Person", ValueText, true, sectionUntraceable, 1, FormTypeUntraceable),
		field("callRemark", "Call Remark", ValueTextArea, true, sectionUntraceable, 2, FormTypeUntraceable),

		field("verificationDate", "Verification Date", ValueDate, false, sectionFinalStatus, 1),
		field("finalStatus", "Final Status", ValueSelect, true, sectionFinalStatus, 2),
		field("holdReason", "Hold Reason", ValueText, false, sectionFinalStatus, 3),
	}
}

func areaAssessmentFields() []FieldDefinition {
	return []FieldDefinition{
		field("politicalConnection", "Political Connection", ValueSelect, false, sectionAreaAssessment, 1),
		field("dominatedArea", "Dominated Area", ValueSelect, false, sectionAreaAssessment, 2),
		field("feedbackFromNeighbour", "Feedback From Neighbour", ValueSelect, false, sectionAreaAssessment, 3),
		field("otherObservation", "Other Observation", ValueTextArea, false, sectionAreaAssessment, 4),
	}
}

func concatFields(groups ...[]FieldDefinition) []FieldDefinition {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	out := make([]FieldDefinition, 0, total)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
