package form

// TemplateVariant selects which static fallback schema to substitute
// when extraction is impossible or yields nothing.
type TemplateVariant string

const (
	// TemplateCurrent is the default fallback schema.
	TemplateCurrent TemplateVariant = "current"
	// TemplateLegacy is the older schema kept for consumers that still
	// reference its exact field-name set. Never the default path.
	TemplateLegacy TemplateVariant = "legacy"
)

// FallbackTemplate returns a fresh copy of the selected static schema.
// The template is a total substitute for extracted output, never merged
// with it. Unknown variants resolve to the current template.
func FallbackTemplate(variant TemplateVariant) []ParsedFormSection {
	switch variant {
	case TemplateLegacy:
		return copySections(legacyTemplate)
	default:
		return copySections(currentTemplate)
	}
}

// DefaultTemplate returns the current fallback schema.
func DefaultTemplate() []ParsedFormSection {
	return FallbackTemplate(TemplateCurrent)
}

// LegacyTemplate returns the backward-compatible fallback schema.
func LegacyTemplate() []ParsedFormSection {
	return FallbackTemplate(TemplateLegacy)
}

// copySections deep-copies the static tables so callers can mutate their
// result without touching package data.
func copySections(src []ParsedFormSection) []ParsedFormSection {
	sections := make([]ParsedFormSection, len(src))
	for i, s := range src {
		fields := make([]ParsedFormField, len(s.Fields))
		for j, f := range s.Fields {
			if len(f.Options) > 0 {
				f.Options = append([]FieldOption(nil), f.Options...)
			}
			fields[j] = f
		}
		s.Fields = fields
		sections[i] = s
	}
	return sections
}

// currentTemplate is the hand-curated schema for a standard business
// credit application. Pure static data; FallbackTemplate hands out
// copies only.
var currentTemplate = []ParsedFormSection{
	{
		Title: "Business Information",
		Order: 1,
		Fields: []ParsedFormField{
			{
				FieldName:   "business_legal_name",
				FieldType:   FieldTypeText,
				FieldLabel:  "Legal Business Name",
				IsRequired:  true,
				Position:    1,
				Section:     "business",
				Description: "The name registered with the state",
				Placeholder: "Acme Holdings LLC",
			},
			{
				FieldName:   "business_dba",
				FieldType:   FieldTypeText,
				FieldLabel:  "Doing Business As",
				Position:    2,
				Section:     "business",
				HelpText:    "Leave blank if the same as the legal name",
				Placeholder: "Acme Coffee",
			},
			{
				FieldName:  "business_entity_type",
				FieldType:  FieldTypeRadio,
				FieldLabel: "Entity Type",
				IsRequired: true,
				Position:   3,
				Section:    "business",
				Options: []FieldOption{
					{Label: "Sole Proprietorship", Value: "sole_proprietorship"},
					{Label: "Partnership", Value: "partnership"},
					{Label: "LLC", Value: "llc"},
					{Label: "Corporation", Value: "corporation"},
					{Label: "Non Profit", Value: "non_profit"},
				},
			},
			{
				FieldName:   "business_ein",
				FieldType:   FieldTypeEIN,
				FieldLabel:  "Federal Tax ID (EIN)",
				IsRequired:  true,
				Position:    4,
				Section:     "business",
				Validation:  `^\d{2}-?\d{7}$`,
				Placeholder: "12-3456789",
			},
			{
				FieldName:   "business_mcc",
				FieldType:   FieldTypeMCCSelect,
				FieldLabel:  "Merchant Category",
				IsRequired:  true,
				Position:    5,
				Section:     "business",
				HelpText:    "Pick the category closest to your primary line of business",
			},
			{
				FieldName:   "business_start_date",
				FieldType:   FieldTypeDate,
				FieldLabel:  "Business Start Date",
				Position:    6,
				Section:     "business",
				Placeholder: "MM/DD/YYYY",
			},
			{
				FieldName:   "business_phone",
				FieldType:   FieldTypePhone,
				FieldLabel:  "Business Phone",
				IsRequired:  true,
				Position:    7,
				Section:     "business",
				Placeholder: "(555) 555-0123",
			},
			{
				FieldName:   "business_website",
				FieldType:   FieldTypeURL,
				FieldLabel:  "Website",
				Position:    8,
				Section:     "business",
				Placeholder: "https://example.com",
			},
			{
				FieldName:   "business_annual_revenue",
				FieldType:   FieldTypeNumber,
				FieldLabel:  "Annual Revenue",
				Position:    9,
				Section:     "business",
				HelpText:    "Gross revenue for the last twelve months, in USD",
			},
			{
				FieldName:   "business_description",
				FieldType:   FieldTypeTextarea,
				FieldLabel:  "Business Description",
				Position:    10,
				Section:     "business",
				Description: "What the business sells and who buys it",
			},
		},
	},
	{
		Title: "Business Address",
		Order: 2,
		Fields: []ParsedFormField{
			{
				FieldName:   "address_street",
				FieldType:   FieldTypeText,
				FieldLabel:  "Street Address",
				IsRequired:  true,
				Position:    11,
				Section:     "address",
				Placeholder: "100 Main St",
			},
			{
				FieldName:  "address_unit",
				FieldType:  FieldTypeText,
				FieldLabel: "Suite / Unit",
				Position:   12,
				Section:    "address",
			},
			{
				FieldName:  "address_city",
				FieldType:  FieldTypeText,
				FieldLabel: "City",
				IsRequired: true,
				Position:   13,
				Section:    "address",
			},
			{
				FieldName:   "address_state",
				FieldType:   FieldTypeText,
				FieldLabel:  "State",
				IsRequired:  true,
				Position:    14,
				Section:     "address",
				Validation:  `^[A-Z]{2}$`,
				Placeholder: "CA",
			},
			{
				FieldName:   "address_zip",
				FieldType:   FieldTypeZipcode,
				FieldLabel:  "ZIP Code",
				IsRequired:  true,
				Position:    15,
				Section:     "address",
				Validation:  `^\d{5}(-\d{4})?$`,
				Placeholder: "94103",
			},
			{
				FieldName:  "address_years_at_location",
				FieldType:  FieldTypeNumber,
				FieldLabel: "Years At Location",
				Position:   16,
				Section:    "address",
			},
		},
	},
	{
		Title: "Owner Information",
		Order: 3,
		Fields: []ParsedFormField{
			{
				FieldName:  "owner_first_name",
				FieldType:  FieldTypeText,
				FieldLabel: "First Name",
				IsRequired: true,
				Position:   17,
				Section:    "owner",
			},
			{
				FieldName:  "owner_last_name",
				FieldType:  FieldTypeText,
				FieldLabel: "Last Name",
				IsRequired: true,
				Position:   18,
				Section:    "owner",
			},
			{
				FieldName:  "owner_title",
				FieldType:  FieldTypeSelect,
				FieldLabel: "Title",
				Position:   19,
				Section:    "owner",
				Options: []FieldOption{
					{Label: "Owner", Value: "owner"},
					{Label: "President", Value: "president"},
					{Label: "CEO", Value: "ceo"},
					{Label: "CFO", Value: "cfo"},
					{Label: "Partner", Value: "partner"},
					{Label: "Member", Value: "member"},
				},
			},
			{
				FieldName:  "owner_ownership_percent",
				FieldType:  FieldTypeNumber,
				FieldLabel: "Ownership Percentage",
				IsRequired: true,
				Position:   20,
				Section:    "owner",
				HelpText:   "Owners with 25% or more must be listed",
			},
			{
				FieldName:   "owner_ssn",
				FieldType:   FieldTypeText,
				FieldLabel:  "Social Security Number",
				IsRequired:  true,
				Position:    21,
				Section:     "owner",
				Validation:  `^\d{3}-?\d{2}-?\d{4}$`,
				Placeholder: "123-45-6789",
			},
			{
				FieldName:   "owner_dob",
				FieldType:   FieldTypeDate,
				FieldLabel:  "Date Of Birth",
				IsRequired:  true,
				Position:    22,
				Section:     "owner",
				Placeholder: "MM/DD/YYYY",
			},
			{
				FieldName:   "owner_email",
				FieldType:   FieldTypeEmail,
				FieldLabel:  "Email",
				IsRequired:  true,
				Position:    23,
				Section:     "owner",
				Placeholder: "owner@example.com",
			},
			{
				FieldName:   "owner_phone",
				FieldType:   FieldTypePhone,
				FieldLabel:  "Phone",
				Position:    24,
				Section:     "owner",
				Placeholder: "(555) 555-0199",
			},
			{
				FieldName:  "owner_home_address",
				FieldType:  FieldTypeText,
				FieldLabel: "Home Address",
				Position:   25,
				Section:    "owner",
			},
			{
				FieldName:  "owner_home_zip",
				FieldType:  FieldTypeZipcode,
				FieldLabel: "Home ZIP Code",
				Position:   26,
				Section:    "owner",
				Validation: `^\d{5}(-\d{4})?$`,
			},
		},
	},
	{
		Title: "Banking Information",
		Order: 4,
		Fields: []ParsedFormField{
			{
				FieldName:  "banking_bank_name",
				FieldType:  FieldTypeText,
				FieldLabel: "Bank Name",
				IsRequired: true,
				Position:   27,
				Section:    "banking",
			},
			{
				FieldName:   "banking_routing_number",
				FieldType:   FieldTypeText,
				FieldLabel:  "Routing Number",
				IsRequired:  true,
				Position:    28,
				Section:     "banking",
				Validation:  `^\d{9}$`,
				Placeholder: "021000021",
			},
			{
				FieldName:  "banking_account_number",
				FieldType:  FieldTypeText,
				FieldLabel: "Account Number",
				IsRequired: true,
				Position:   29,
				Section:    "banking",
			},
			{
				FieldName:  "banking_account_type",
				FieldType:  FieldTypeRadio,
				FieldLabel: "Account Type",
				Position:   30,
				Section:    "banking",
				Options: []FieldOption{
					{Label: "Checking", Value: "checking"},
					{Label: "Savings", Value: "savings"},
				},
				DefaultValue: "checking",
			},
			{
				FieldName:  "banking_statements_provided",
				FieldType:  FieldTypeBoolean,
				FieldLabel: "Bank Statements Provided",
				Position:   31,
				Section:    "banking",
				HelpText:   "Three most recent monthly statements",
			},
		},
	},
	{
		Title: "Agreement",
		Order: 5,
		Fields: []ParsedFormField{
			{
				FieldName:   "agreement_terms_accepted",
				FieldType:   FieldTypeCheckbox,
				FieldLabel:  "Terms Accepted",
				IsRequired:  true,
				Position:    32,
				Section:     "agreement",
				Description: "Acknowledgement of the application terms and credit check authorization",
			},
			{
				FieldName:  "agreement_personal_guarantee",
				FieldType:  FieldTypeBoolean,
				FieldLabel: "Personal Guarantee",
				Position:   33,
				Section:    "agreement",
			},
			{
				FieldName:  "agreement_signature_name",
				FieldType:  FieldTypeText,
				FieldLabel: "Signature Name",
				IsRequired: true,
				Position:   34,
				Section:    "agreement",
			},
			{
				FieldName:   "agreement_signature_date",
				FieldType:   FieldTypeDate,
				FieldLabel:  "Signature Date",
				IsRequired:  true,
				Position:    35,
				Section:     "agreement",
				Placeholder: "MM/DD/YYYY",
			},
		},
	},
}

// legacyTemplate predates the sectioned application schema. Downstream
// consumers still reference these exact field names, so the set must not
// change.
var legacyTemplate = []ParsedFormSection{
	{
		Title: "Merchant Details",
		Order: 1,
		Fields: []ParsedFormField{
			{
				FieldName:  "merchant_name",
				FieldType:  FieldTypeText,
				FieldLabel: "Merchant Name",
				IsRequired: true,
				Position:   1,
				Section:    "merchant",
			},
			{
				FieldName:  "merchant_entity",
				FieldType:  FieldTypeRadio,
				FieldLabel: "Entity",
				Position:   2,
				Section:    "merchant",
				Options: []FieldOption{
					{Label: "Partnership", Value: "partnership"},
					{Label: "Llc", Value: "llc"},
					{Label: "Corp", Value: "corp"},
				},
			},
			{
				FieldName:  "merchant_taxid",
				FieldType:  FieldTypeEIN,
				FieldLabel: "Tax ID",
				IsRequired: true,
				Position:   3,
				Section:    "merchant",
			},
			{
				FieldName:  "merchant_phone",
				FieldType:  FieldTypePhone,
				FieldLabel: "Phone",
				Position:   4,
				Section:    "merchant",
			},
			{
				FieldName:  "merchant_address",
				FieldType:  FieldTypeText,
				FieldLabel: "Address",
				Position:   5,
				Section:    "merchant",
			},
			{
				FieldName:  "merchant_zipcode",
				FieldType:  FieldTypeZipcode,
				FieldLabel: "Zipcode",
				Position:   6,
				Section:    "merchant",
			},
		},
	},
	{
		Title: "Principal",
		Order: 2,
		Fields: []ParsedFormField{
			{
				FieldName:  "principal_name",
				FieldType:  FieldTypeText,
				FieldLabel: "Name",
				IsRequired: true,
				Position:   7,
				Section:    "principal",
			},
			{
				FieldName:  "principal_ssn",
				FieldType:  FieldTypeText,
				FieldLabel: "Ssn",
				Position:   8,
				Section:    "principal",
			},
			{
				FieldName:  "principal_email",
				FieldType:  FieldTypeEmail,
				FieldLabel: "Email",
				Position:   9,
				Section:    "principal",
			},
			{
				FieldName:  "principal_dob",
				FieldType:  FieldTypeDate,
				FieldLabel: "Dob",
				Position:   10,
				Section:    "principal",
			},
		},
	},
	{
		Title: "Bank",
		Order: 3,
		Fields: []ParsedFormField{
			{
				FieldName:  "bank_name",
				FieldType:  FieldTypeText,
				FieldLabel: "Name",
				Position:   11,
				Section:    "bank",
			},
			{
				FieldName:  "bank_routing",
				FieldType:  FieldTypeText,
				FieldLabel: "Routing",
				Position:   12,
				Section:    "bank",
			},
			{
				FieldName:  "bank_account",
				FieldType:  FieldTypeText,
				FieldLabel: "Account",
				Position:   13,
				Section:    "bank",
			},
		},
	},
}
