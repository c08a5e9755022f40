package converter

import (
	"pharma-info-service/internal/delivery/dto"
	"pharma-info-service/internal/infrastructure/openfda"
)

// LabelToDrug flattens one provider label record into the gateway's drug
// projection. Missing provider fields become explicit nulls.
func LabelToDrug(label *openfda.Label) dto.DrugResponse {
	return dto.DrugResponse{
		ID:                labelID(label),
		BrandName:         firstOf(label.OpenFDA.BrandName),
		GenericName:       firstOf(label.OpenFDA.GenericName),
		ManufacturerName:  firstOf(label.OpenFDA.ManufacturerName),
		ActiveIngredients: label.ActiveIngredient,
		DosageForm:        firstOf(label.DosageForm),
		Route:             firstOf(label.OpenFDA.Route),
		Description:       firstOf(label.Description),
	}
}

// LabelToDrugDetail extends the flat projection with the label's narrative
// sections.
func LabelToDrugDetail(label *openfda.Label) dto.DrugDetailResponse {
	return dto.DrugDetailResponse{
		DrugResponse:         LabelToDrug(label),
		Indications:          label.IndicationsAndUsage,
		Warnings:             label.Warnings,
		Contraindications:    label.Contraindications,
		AdverseReactions:     label.AdverseReactions,
		DrugInteractions:     label.DrugInteractions,
		DosageAdministration: label.DosageAndAdministration,
	}
}

// LabelsToDrugs converts a provider result set to the flat list shape.
func LabelsToDrugs(labels []openfda.Label) []dto.DrugResponse {
	drugs := make([]dto.DrugResponse, len(labels))
	for i := range labels {
		drugs[i] = LabelToDrug(&labels[i])
	}
	return drugs
}

// EventToResponse projects one adverse-event report. Reaction and drug lists
// default to empty, not null.
func EventToResponse(event *openfda.Event) dto.AdverseEventResponse {
	resp := dto.AdverseEventResponse{
		ReportID:    scalar(event.SafetyReportID),
		ReceiveDate: scalar(event.ReceiveDate),
		Seriousness: scalar(event.Serious),
		Reactions:   []dto.ReactionResponse{},
		Drugs:       []dto.EventDrugResponse{},
	}

	if event.Patient == nil {
		return resp
	}

	resp.PatientAge = scalar(event.Patient.PatientOnsetAge)
	resp.PatientSex = scalar(event.Patient.PatientSex)

	for _, r := range event.Patient.Reactions {
		resp.Reactions = append(resp.Reactions, dto.ReactionResponse{
			ReactionName: scalar(r.ReactionMedDRAPT),
			Outcome:      scalar(r.ReactionOutcome),
		})
	}
	for _, d := range event.Patient.Drugs {
		resp.Drugs = append(resp.Drugs, dto.EventDrugResponse{
			Name:       scalar(d.MedicinalProduct),
			Indication: scalar(d.DrugIndication),
			Dosage:     scalar(d.DrugDosageText),
		})
	}
	return resp
}

func EventsToResponses(events []openfda.Event) []dto.AdverseEventResponse {
	responses := make([]dto.AdverseEventResponse, len(events))
	for i := range events {
		responses[i] = EventToResponse(&events[i])
	}
	return responses
}

// EnforcementToRecall projects one recall record.
func EnforcementToRecall(recall *openfda.Enforcement) dto.RecallResponse {
	return dto.RecallResponse{
		RecallID:             nonEmpty(recall.RecallNumber),
		RecallInitiationDate: nonEmpty(recall.RecallInitiationDate),
		Product:              nonEmpty(recall.ProductDescription),
		Reason:               nonEmpty(recall.ReasonForRecall),
		Status:               nonEmpty(recall.Status),
		Classification:       nonEmpty(recall.Classification),
		Company:              nonEmpty(recall.RecallingFirm),
		Country:              nonEmpty(recall.Country),
		DistributionPattern:  nonEmpty(recall.DistributionPattern),
	}
}

func EnforcementsToRecalls(recalls []openfda.Enforcement) []dto.RecallResponse {
	responses := make([]dto.RecallResponse, len(recalls))
	for i := range recalls {
		responses[i] = EnforcementToRecall(&recalls[i])
	}
	return responses
}

// labelID prefers the record id and falls back to the first application
// number.
func labelID(label *openfda.Label) *string {
	if label.ID != "" {
		id := label.ID
		return &id
	}
	return firstOf(label.OpenFDA.ApplicationNumber)
}

func firstOf(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

func nonEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func scalar(value openfda.StringOrNumber) *string {
	return nonEmpty(string(value))
}
