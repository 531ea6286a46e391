// Code generated by ent, DO NOT EDIT.

package modelcall

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/narraforge/narraforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldContainsFold(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldJobID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldStage, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldAttempt, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldProvider, v))
}

// ModelID applies equality check predicate on the "model_id" field. It's identical to ModelIDEQ.
func ModelID(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldModelID, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldTier, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldCompletionTokens, v))
}

// UsdCost applies equality check predicate on the "usd_cost" field. It's identical to UsdCostEQ.
func UsdCost(v float64) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldUsdCost, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorClass applies equality check predicate on the "error_class" field. It's identical to ErrorClassEQ.
func ErrorClass(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldErrorClass, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldCreatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldContainsFold(FieldJobID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLTE(FieldStage, v))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLTE(FieldAttempt, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldContainsFold(FieldProvider, v))
}

// ModelIDEQ applies the EQ predicate on the "model_id" field.
func ModelIDEQ(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldModelID, v))
}

// ModelIDNEQ applies the NEQ predicate on the "model_id" field.
func ModelIDNEQ(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNEQ(FieldModelID, v))
}

// ModelIDIn applies the In predicate on the "model_id" field.
func ModelIDIn(vs ...string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIn(FieldModelID, vs...))
}

// ModelIDNotIn applies the NotIn predicate on the "model_id" field.
func ModelIDNotIn(vs ...string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotIn(FieldModelID, vs...))
}

// ModelIDGT applies the GT predicate on the "model_id" field.
func ModelIDGT(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGT(FieldModelID, v))
}

// ModelIDGTE applies the GTE predicate on the "model_id" field.
func ModelIDGTE(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGTE(FieldModelID, v))
}

// ModelIDLT applies the LT predicate on the "model_id" field.
func ModelIDLT(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLT(FieldModelID, v))
}

// ModelIDLTE applies the LTE predicate on the "model_id" field.
func ModelIDLTE(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLTE(FieldModelID, v))
}

// ModelIDContains applies the Contains predicate on the "model_id" field.
func ModelIDContains(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldContains(FieldModelID, v))
}

// ModelIDHasPrefix applies the HasPrefix predicate on the "model_id" field.
func ModelIDHasPrefix(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldHasPrefix(FieldModelID, v))
}

// ModelIDHasSuffix applies the HasSuffix predicate on the "model_id" field.
func ModelIDHasSuffix(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldHasSuffix(FieldModelID, v))
}

// ModelIDEqualFold applies the EqualFold predicate on the "model_id" field.
func ModelIDEqualFold(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEqualFold(FieldModelID, v))
}

// ModelIDContainsFold applies the ContainsFold predicate on the "model_id" field.
func ModelIDContainsFold(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldContainsFold(FieldModelID, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldContainsFold(FieldTier, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLTE(FieldCompletionTokens, v))
}

// UsdCostEQ applies the EQ predicate on the "usd_cost" field.
func UsdCostEQ(v float64) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldUsdCost, v))
}

// UsdCostNEQ applies the NEQ predicate on the "usd_cost" field.
func UsdCostNEQ(v float64) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNEQ(FieldUsdCost, v))
}

// UsdCostIn applies the In predicate on the "usd_cost" field.
func UsdCostIn(vs ...float64) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIn(FieldUsdCost, vs...))
}

// UsdCostNotIn applies the NotIn predicate on the "usd_cost" field.
func UsdCostNotIn(vs ...float64) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotIn(FieldUsdCost, vs...))
}

// UsdCostGT applies the GT predicate on the "usd_cost" field.
func UsdCostGT(v float64) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGT(FieldUsdCost, v))
}

// UsdCostGTE applies the GTE predicate on the "usd_cost" field.
func UsdCostGTE(v float64) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGTE(FieldUsdCost, v))
}

// UsdCostLT applies the LT predicate on the "usd_cost" field.
func UsdCostLT(v float64) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLT(FieldUsdCost, v))
}

// UsdCostLTE applies the LTE predicate on the "usd_cost" field.
func UsdCostLTE(v float64) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLTE(FieldUsdCost, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLTE(FieldDurationMs, v))
}

// ErrorClassEQ applies the EQ predicate on the "error_class" field.
func ErrorClassEQ(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldErrorClass, v))
}

// ErrorClassNEQ applies the NEQ predicate on the "error_class" field.
func ErrorClassNEQ(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNEQ(FieldErrorClass, v))
}

// ErrorClassIn applies the In predicate on the "error_class" field.
func ErrorClassIn(vs ...string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIn(FieldErrorClass, vs...))
}

// ErrorClassNotIn applies the NotIn predicate on the "error_class" field.
func ErrorClassNotIn(vs ...string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotIn(FieldErrorClass, vs...))
}

// ErrorClassGT applies the GT predicate on the "error_class" field.
func ErrorClassGT(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGT(FieldErrorClass, v))
}

// ErrorClassGTE applies the GTE predicate on the "error_class" field.
func ErrorClassGTE(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGTE(FieldErrorClass, v))
}

// ErrorClassLT applies the LT predicate on the "error_class" field.
func ErrorClassLT(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLT(FieldErrorClass, v))
}

// ErrorClassLTE applies the LTE predicate on the "error_class" field.
func ErrorClassLTE(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLTE(FieldErrorClass, v))
}

// ErrorClassContains applies the Contains predicate on the "error_class" field.
func ErrorClassContains(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldContains(FieldErrorClass, v))
}

// ErrorClassHasPrefix applies the HasPrefix predicate on the "error_class" field.
func ErrorClassHasPrefix(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldHasPrefix(FieldErrorClass, v))
}

// ErrorClassHasSuffix applies the HasSuffix predicate on the "error_class" field.
func ErrorClassHasSuffix(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldHasSuffix(FieldErrorClass, v))
}

// ErrorClassIsNil applies the IsNil predicate on the "error_class" field.
func ErrorClassIsNil() predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIsNull(FieldErrorClass))
}

// ErrorClassNotNil applies the NotNil predicate on the "error_class" field.
func ErrorClassNotNil() predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotNull(FieldErrorClass))
}

// ErrorClassEqualFold applies the EqualFold predicate on the "error_class" field.
func ErrorClassEqualFold(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEqualFold(FieldErrorClass, v))
}

// ErrorClassContainsFold applies the ContainsFold predicate on the "error_class" field.
func ErrorClassContainsFold(v string) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldContainsFold(FieldErrorClass, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ModelCall {
	return predicate.ModelCall(sql.FieldLTE(FieldCreatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.ModelCall {
	return predicate.ModelCall(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.ModelCall {
	return predicate.ModelCall(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ModelCall) predicate.ModelCall {
	return predicate.ModelCall(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ModelCall) predicate.ModelCall {
	return predicate.ModelCall(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ModelCall) predicate.ModelCall {
	return predicate.ModelCall(sql.NotPredicates(p))
}
