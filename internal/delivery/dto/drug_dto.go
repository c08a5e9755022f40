package dto

// Responses for the drug-information gateway. Scalar fields are pointers and
// marshal to explicit nulls when the provider omits them; lists on events
// default to empty, not null.

type DrugResponse struct {
	ID                *string  `json:"id"`
	BrandName         *string  `json:"brandName"`
	GenericName       *string  `json:"genericName"`
	ManufacturerName  *string  `json:"manufacturerName"`
	ActiveIngredients []string `json:"activeIngredients"`
	DosageForm        *string  `json:"dosageForm"`
	Route             *string  `json:"route"`
	Description       *string  `json:"description"`
}

type DrugDetailResponse struct {
	DrugResponse
	Indications          []string `json:"indications"`
	Warnings             []string `json:"warnings"`
	Contraindications    []string `json:"contraindications"`
	AdverseReactions     []string `json:"adverseReactions"`
	DrugInteractions     []string `json:"drugInteractions"`
	DosageAdministration []string `json:"dosageAdministration"`
}

type ReactionResponse struct {
	ReactionName *string `json:"reactionName"`
	Outcome      *string `json:"outcome"`
}

type EventDrugResponse struct {
	Name       *string `json:"name"`
	Indication *string `json:"indication"`
	Dosage     *string `json:"dosage"`
}

type AdverseEventResponse struct {
	ReportID    *string             `json:"reportId"`
	ReceiveDate *string             `json:"receiveDate"`
	Seriousness *string             `json:"seriousness"`
	PatientAge  *string             `json:"patientAge"`
	PatientSex  *string             `json:"patientSex"`
	Reactions   []ReactionResponse  `json:"reactions"`
	Drugs       []EventDrugResponse `json:"drugs"`
}

type RecallResponse struct {
	RecallID             *string `json:"recallId"`
	RecallInitiationDate *string `json:"recallInitiationDate"`
	Product              *string `json:"product"`
	Reason               *string `json:"reason"`
	Status               *string `json:"status"`
	Classification       *string `json:"classification"`
	Company              *string `json:"company"`
	Country              *string `json:"country"`
	DistributionPattern  *string `json:"distributionPattern"`
}

// Success envelopes, shapes fixed by the public API.

type DrugListResponse struct {
	Success bool           `json:"success"`
	Total   int            `json:"total"`
	Drugs   []DrugResponse `json:"drugs"`
}

type DrugDetailEnvelope struct {
	Success bool               `json:"success"`
	Drug    DrugDetailResponse `json:"drug"`
}

type AdverseEventListResponse struct {
	Success bool                   `json:"success"`
	Total   int                    `json:"total"`
	Events  []AdverseEventResponse `json:"events"`
}

type RecallListResponse struct {
	Success bool             `json:"success"`
	Total   int              `json:"total"`
	Recalls []RecallResponse `json:"recalls"`
}
