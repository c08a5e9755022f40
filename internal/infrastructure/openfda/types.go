package openfda

import "encoding/json"

// StringOrNumber tolerates openFDA fields that appear as either JSON strings
// or bare numbers depending on the record (e.g. serious, patientonsetage).
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = StringOrNumber(str)
		return nil
	}
	*s = StringOrNumber(data)
	return nil
}

type Meta struct {
	Results MetaResults `json:"results"`
}

type MetaResults struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// OpenFDA is the harmonized metadata block nested in label and event records.
type OpenFDA struct {
	ApplicationNumber []string `json:"application_number"`
	BrandName         []string `json:"brand_name"`
	GenericName       []string `json:"generic_name"`
	ManufacturerName  []string `json:"manufacturer_name"`
	SubstanceName     []string `json:"substance_name"`
	Route             []string `json:"route"`
}

// Label is one record from /drug/label.json.
type Label struct {
	ID                      string   `json:"id"`
	ActiveIngredient        []string `json:"active_ingredient"`
	DosageForm              []string `json:"dosage_form"`
	Description             []string `json:"description"`
	IndicationsAndUsage     []string `json:"indications_and_usage"`
	Warnings                []string `json:"warnings"`
	Contraindications       []string `json:"contraindications"`
	AdverseReactions        []string `json:"adverse_reactions"`
	DrugInteractions        []string `json:"drug_interactions"`
	DosageAndAdministration []string `json:"dosage_and_administration"`
	OpenFDA                 OpenFDA  `json:"openfda"`
}

type LabelResponse struct {
	Meta    Meta    `json:"meta"`
	Results []Label `json:"results"`
}

// Event is one adverse-event report from /drug/event.json.
type Event struct {
	SafetyReportID StringOrNumber `json:"safetyreportid"`
	ReceiveDate    StringOrNumber `json:"receivedate"`
	Serious        StringOrNumber `json:"serious"`
	Patient        *EventPatient  `json:"patient"`
}

type EventPatient struct {
	PatientOnsetAge StringOrNumber  `json:"patientonsetage"`
	PatientSex      StringOrNumber  `json:"patientsex"`
	Reactions       []EventReaction `json:"reaction"`
	Drugs           []EventDrug     `json:"drug"`
}

type EventReaction struct {
	ReactionMedDRAPT StringOrNumber `json:"reactionmeddrapt"`
	ReactionOutcome  StringOrNumber `json:"reactionoutcome"`
}

type EventDrug struct {
	MedicinalProduct StringOrNumber `json:"medicinalproduct"`
	DrugIndication   StringOrNumber `json:"drugindication"`
	DrugDosageText   StringOrNumber `json:"drugdosagetext"`
}

type EventResponse struct {
	Meta    Meta    `json:"meta"`
	Results []Event `json:"results"`
}

// Enforcement is one recall record from /drug/enforcement.json.
type Enforcement struct {
	RecallNumber         string `json:"recall_number"`
	RecallInitiationDate string `json:"recall_initiation_date"`
	ProductDescription   string `json:"product_description"`
	ReasonForRecall      string `json:"reason_for_recall"`
	Status               string `json:"status"`
	Classification       string `json:"classification"`
	RecallingFirm        string `json:"recalling_firm"`
	Country              string `json:"country"`
	DistributionPattern  string `json:"distribution_pattern"`
}

type EnforcementResponse struct {
	Meta    Meta          `json:"meta"`
	Results []Enforcement `json:"results"`
}
