// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/narraforge/narraforge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldID, id))
}

// ProductionType applies equality check predicate on the "production_type" field. It's identical to ProductionTypeEQ.
func ProductionType(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProductionType, v))
}

// Genre applies equality check predicate on the "genre" field. It's identical to GenreEQ.
func Genre(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldGenre, v))
}

// ContentLanguage applies equality check predicate on the "content_language" field. It's identical to ContentLanguageEQ.
func ContentLanguage(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldContentLanguage, v))
}

// CurrentStage applies equality check predicate on the "current_stage" field. It's identical to CurrentStageEQ.
func CurrentStage(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCurrentStage, v))
}

// CumulativeCostUsd applies equality check predicate on the "cumulative_cost_usd" field. It's identical to CumulativeCostUsdEQ.
func CumulativeCostUsd(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCumulativeCostUsd, v))
}

// CumulativePromptTokens applies equality check predicate on the "cumulative_prompt_tokens" field. It's identical to CumulativePromptTokensEQ.
func CumulativePromptTokens(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCumulativePromptTokens, v))
}

// CumulativeCompletionTokens applies equality check predicate on the "cumulative_completion_tokens" field. It's identical to CumulativeCompletionTokensEQ.
func CumulativeCompletionTokens(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCumulativeCompletionTokens, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorKind applies equality check predicate on the "error_kind" field. It's identical to ErrorKindEQ.
func ErrorKind(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorStage applies equality check predicate on the "error_stage" field. It's identical to ErrorStageEQ.
func ErrorStage(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorStage, v))
}

// Owner applies equality check predicate on the "owner" field. It's identical to OwnerEQ.
func Owner(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldOwner, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDeletedAt, v))
}

// ProductionTypeEQ applies the EQ predicate on the "production_type" field.
func ProductionTypeEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProductionType, v))
}

// ProductionTypeNEQ applies the NEQ predicate on the "production_type" field.
func ProductionTypeNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldProductionType, v))
}

// ProductionTypeIn applies the In predicate on the "production_type" field.
func ProductionTypeIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldProductionType, vs...))
}

// ProductionTypeNotIn applies the NotIn predicate on the "production_type" field.
func ProductionTypeNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldProductionType, vs...))
}

// ProductionTypeGT applies the GT predicate on the "production_type" field.
func ProductionTypeGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldProductionType, v))
}

// ProductionTypeGTE applies the GTE predicate on the "production_type" field.
func ProductionTypeGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldProductionType, v))
}

// ProductionTypeLT applies the LT predicate on the "production_type" field.
func ProductionTypeLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldProductionType, v))
}

// ProductionTypeLTE applies the LTE predicate on the "production_type" field.
func ProductionTypeLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldProductionType, v))
}

// ProductionTypeContains applies the Contains predicate on the "production_type" field.
func ProductionTypeContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldProductionType, v))
}

// ProductionTypeHasPrefix applies the HasPrefix predicate on the "production_type" field.
func ProductionTypeHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldProductionType, v))
}

// ProductionTypeHasSuffix applies the HasSuffix predicate on the "production_type" field.
func ProductionTypeHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldProductionType, v))
}

// ProductionTypeEqualFold applies the EqualFold predicate on the "production_type" field.
func ProductionTypeEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldProductionType, v))
}

// ProductionTypeContainsFold applies the ContainsFold predicate on the "production_type" field.
func ProductionTypeContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldProductionType, v))
}

// GenreEQ applies the EQ predicate on the "genre" field.
func GenreEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldGenre, v))
}

// GenreNEQ applies the NEQ predicate on the "genre" field.
func GenreNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldGenre, v))
}

// GenreIn applies the In predicate on the "genre" field.
func GenreIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldGenre, vs...))
}

// GenreNotIn applies the NotIn predicate on the "genre" field.
func GenreNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldGenre, vs...))
}

// GenreGT applies the GT predicate on the "genre" field.
func GenreGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldGenre, v))
}

// GenreGTE applies the GTE predicate on the "genre" field.
func GenreGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldGenre, v))
}

// GenreLT applies the LT predicate on the "genre" field.
func GenreLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldGenre, v))
}

// GenreLTE applies the LTE predicate on the "genre" field.
func GenreLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldGenre, v))
}

// GenreContains applies the Contains predicate on the "genre" field.
func GenreContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldGenre, v))
}

// GenreHasPrefix applies the HasPrefix predicate on the "genre" field.
func GenreHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldGenre, v))
}

// GenreHasSuffix applies the HasSuffix predicate on the "genre" field.
func GenreHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldGenre, v))
}

// GenreEqualFold applies the EqualFold predicate on the "genre" field.
func GenreEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldGenre, v))
}

// GenreContainsFold applies the ContainsFold predicate on the "genre" field.
func GenreContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldGenre, v))
}

// ContentLanguageEQ applies the EQ predicate on the "content_language" field.
func ContentLanguageEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldContentLanguage, v))
}

// ContentLanguageNEQ applies the NEQ predicate on the "content_language" field.
func ContentLanguageNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldContentLanguage, v))
}

// ContentLanguageIn applies the In predicate on the "content_language" field.
func ContentLanguageIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldContentLanguage, vs...))
}

// ContentLanguageNotIn applies the NotIn predicate on the "content_language" field.
func ContentLanguageNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldContentLanguage, vs...))
}

// ContentLanguageGT applies the GT predicate on the "content_language" field.
func ContentLanguageGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldContentLanguage, v))
}

// ContentLanguageGTE applies the GTE predicate on the "content_language" field.
func ContentLanguageGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldContentLanguage, v))
}

// ContentLanguageLT applies the LT predicate on the "content_language" field.
func ContentLanguageLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldContentLanguage, v))
}

// ContentLanguageLTE applies the LTE predicate on the "content_language" field.
func ContentLanguageLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldContentLanguage, v))
}

// ContentLanguageContains applies the Contains predicate on the "content_language" field.
func ContentLanguageContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldContentLanguage, v))
}

// ContentLanguageHasPrefix applies the HasPrefix predicate on the "content_language" field.
func ContentLanguageHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldContentLanguage, v))
}

// ContentLanguageHasSuffix applies the HasSuffix predicate on the "content_language" field.
func ContentLanguageHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldContentLanguage, v))
}

// ContentLanguageEqualFold applies the EqualFold predicate on the "content_language" field.
func ContentLanguageEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldContentLanguage, v))
}

// ContentLanguageContainsFold applies the ContainsFold predicate on the "content_language" field.
func ContentLanguageContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldContentLanguage, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentStageEQ applies the EQ predicate on the "current_stage" field.
func CurrentStageEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCurrentStage, v))
}

// CurrentStageNEQ applies the NEQ predicate on the "current_stage" field.
func CurrentStageNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCurrentStage, v))
}

// CurrentStageIn applies the In predicate on the "current_stage" field.
func CurrentStageIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCurrentStage, vs...))
}

// CurrentStageNotIn applies the NotIn predicate on the "current_stage" field.
func CurrentStageNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCurrentStage, vs...))
}

// CurrentStageGT applies the GT predicate on the "current_stage" field.
func CurrentStageGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCurrentStage, v))
}

// CurrentStageGTE applies the GTE predicate on the "current_stage" field.
func CurrentStageGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCurrentStage, v))
}

// CurrentStageLT applies the LT predicate on the "current_stage" field.
func CurrentStageLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCurrentStage, v))
}

// CurrentStageLTE applies the LTE predicate on the "current_stage" field.
func CurrentStageLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCurrentStage, v))
}

// CurrentStageIsNil applies the IsNil predicate on the "current_stage" field.
func CurrentStageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCurrentStage))
}

// CurrentStageNotNil applies the NotNil predicate on the "current_stage" field.
func CurrentStageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCurrentStage))
}

// CumulativeCostUsdEQ applies the EQ predicate on the "cumulative_cost_usd" field.
func CumulativeCostUsdEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCumulativeCostUsd, v))
}

// CumulativeCostUsdNEQ applies the NEQ predicate on the "cumulative_cost_usd" field.
func CumulativeCostUsdNEQ(v float64) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCumulativeCostUsd, v))
}

// CumulativeCostUsdIn applies the In predicate on the "cumulative_cost_usd" field.
func CumulativeCostUsdIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCumulativeCostUsd, vs...))
}

// CumulativeCostUsdNotIn applies the NotIn predicate on the "cumulative_cost_usd" field.
func CumulativeCostUsdNotIn(vs ...float64) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCumulativeCostUsd, vs...))
}

// CumulativeCostUsdGT applies the GT predicate on the "cumulative_cost_usd" field.
func CumulativeCostUsdGT(v float64) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCumulativeCostUsd, v))
}

// CumulativeCostUsdGTE applies the GTE predicate on the "cumulative_cost_usd" field.
func CumulativeCostUsdGTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCumulativeCostUsd, v))
}

// CumulativeCostUsdLT applies the LT predicate on the "cumulative_cost_usd" field.
func CumulativeCostUsdLT(v float64) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCumulativeCostUsd, v))
}

// CumulativeCostUsdLTE applies the LTE predicate on the "cumulative_cost_usd" field.
func CumulativeCostUsdLTE(v float64) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCumulativeCostUsd, v))
}

// CumulativePromptTokensEQ applies the EQ predicate on the "cumulative_prompt_tokens" field.
func CumulativePromptTokensEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCumulativePromptTokens, v))
}

// CumulativePromptTokensNEQ applies the NEQ predicate on the "cumulative_prompt_tokens" field.
func CumulativePromptTokensNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCumulativePromptTokens, v))
}

// CumulativePromptTokensIn applies the In predicate on the "cumulative_prompt_tokens" field.
func CumulativePromptTokensIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCumulativePromptTokens, vs...))
}

// CumulativePromptTokensNotIn applies the NotIn predicate on the "cumulative_prompt_tokens" field.
func CumulativePromptTokensNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCumulativePromptTokens, vs...))
}

// CumulativePromptTokensGT applies the GT predicate on the "cumulative_prompt_tokens" field.
func CumulativePromptTokensGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCumulativePromptTokens, v))
}

// CumulativePromptTokensGTE applies the GTE predicate on the "cumulative_prompt_tokens" field.
func CumulativePromptTokensGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCumulativePromptTokens, v))
}

// CumulativePromptTokensLT applies the LT predicate on the "cumulative_prompt_tokens" field.
func CumulativePromptTokensLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCumulativePromptTokens, v))
}

// CumulativePromptTokensLTE applies the LTE predicate on the "cumulative_prompt_tokens" field.
func CumulativePromptTokensLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCumulativePromptTokens, v))
}

// CumulativeCompletionTokensEQ applies the EQ predicate on the "cumulative_completion_tokens" field.
func CumulativeCompletionTokensEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCumulativeCompletionTokens, v))
}

// CumulativeCompletionTokensNEQ applies the NEQ predicate on the "cumulative_completion_tokens" field.
func CumulativeCompletionTokensNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCumulativeCompletionTokens, v))
}

// CumulativeCompletionTokensIn applies the In predicate on the "cumulative_completion_tokens" field.
func CumulativeCompletionTokensIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCumulativeCompletionTokens, vs...))
}

// CumulativeCompletionTokensNotIn applies the NotIn predicate on the "cumulative_completion_tokens" field.
func CumulativeCompletionTokensNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCumulativeCompletionTokens, vs...))
}

// CumulativeCompletionTokensGT applies the GT predicate on the "cumulative_completion_tokens" field.
func CumulativeCompletionTokensGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCumulativeCompletionTokens, v))
}

// CumulativeCompletionTokensGTE applies the GTE predicate on the "cumulative_completion_tokens" field.
func CumulativeCompletionTokensGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCumulativeCompletionTokens, v))
}

// CumulativeCompletionTokensLT applies the LT predicate on the "cumulative_completion_tokens" field.
func CumulativeCompletionTokensLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCumulativeCompletionTokens, v))
}

// CumulativeCompletionTokensLTE applies the LTE predicate on the "cumulative_completion_tokens" field.
func CumulativeCompletionTokensLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCumulativeCompletionTokens, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ErrorKindEQ applies the EQ predicate on the "error_kind" field.
func ErrorKindEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorKind, v))
}

// ErrorKindNEQ applies the NEQ predicate on the "error_kind" field.
func ErrorKindNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorKind, v))
}

// ErrorKindIn applies the In predicate on the "error_kind" field.
func ErrorKindIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorKind, vs...))
}

// ErrorKindNotIn applies the NotIn predicate on the "error_kind" field.
func ErrorKindNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorKind, vs...))
}

// ErrorKindGT applies the GT predicate on the "error_kind" field.
func ErrorKindGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorKind, v))
}

// ErrorKindGTE applies the GTE predicate on the "error_kind" field.
func ErrorKindGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorKind, v))
}

// ErrorKindLT applies the LT predicate on the "error_kind" field.
func ErrorKindLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorKind, v))
}

// ErrorKindLTE applies the LTE predicate on the "error_kind" field.
func ErrorKindLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorKind, v))
}

// ErrorKindContains applies the Contains predicate on the "error_kind" field.
func ErrorKindContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldErrorKind, v))
}

// ErrorKindHasPrefix applies the HasPrefix predicate on the "error_kind" field.
func ErrorKindHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldErrorKind, v))
}

// ErrorKindHasSuffix applies the HasSuffix predicate on the "error_kind" field.
func ErrorKindHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldErrorKind, v))
}

// ErrorKindIsNil applies the IsNil predicate on the "error_kind" field.
func ErrorKindIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorKind))
}

// ErrorKindNotNil applies the NotNil predicate on the "error_kind" field.
func ErrorKindNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorKind))
}

// ErrorKindEqualFold applies the EqualFold predicate on the "error_kind" field.
func ErrorKindEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldErrorKind, v))
}

// ErrorKindContainsFold applies the ContainsFold predicate on the "error_kind" field.
func ErrorKindContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldErrorKind, v))
}

// ErrorStageEQ applies the EQ predicate on the "error_stage" field.
func ErrorStageEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldErrorStage, v))
}

// ErrorStageNEQ applies the NEQ predicate on the "error_stage" field.
func ErrorStageNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldErrorStage, v))
}

// ErrorStageIn applies the In predicate on the "error_stage" field.
func ErrorStageIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldErrorStage, vs...))
}

// ErrorStageNotIn applies the NotIn predicate on the "error_stage" field.
func ErrorStageNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldErrorStage, vs...))
}

// ErrorStageGT applies the GT predicate on the "error_stage" field.
func ErrorStageGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldErrorStage, v))
}

// ErrorStageGTE applies the GTE predicate on the "error_stage" field.
func ErrorStageGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldErrorStage, v))
}

// ErrorStageLT applies the LT predicate on the "error_stage" field.
func ErrorStageLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldErrorStage, v))
}

// ErrorStageLTE applies the LTE predicate on the "error_stage" field.
func ErrorStageLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldErrorStage, v))
}

// ErrorStageIsNil applies the IsNil predicate on the "error_stage" field.
func ErrorStageIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldErrorStage))
}

// ErrorStageNotNil applies the NotNil predicate on the "error_stage" field.
func ErrorStageNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldErrorStage))
}

// OwnerEQ applies the EQ predicate on the "owner" field.
func OwnerEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldOwner, v))
}

// OwnerNEQ applies the NEQ predicate on the "owner" field.
func OwnerNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldOwner, v))
}

// OwnerIn applies the In predicate on the "owner" field.
func OwnerIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldOwner, vs...))
}

// OwnerNotIn applies the NotIn predicate on the "owner" field.
func OwnerNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldOwner, vs...))
}

// OwnerGT applies the GT predicate on the "owner" field.
func OwnerGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldOwner, v))
}

// OwnerGTE applies the GTE predicate on the "owner" field.
func OwnerGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldOwner, v))
}

// OwnerLT applies the LT predicate on the "owner" field.
func OwnerLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldOwner, v))
}

// OwnerLTE applies the LTE predicate on the "owner" field.
func OwnerLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldOwner, v))
}

// OwnerContains applies the Contains predicate on the "owner" field.
func OwnerContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldOwner, v))
}

// OwnerHasPrefix applies the HasPrefix predicate on the "owner" field.
func OwnerHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldOwner, v))
}

// OwnerHasSuffix applies the HasSuffix predicate on the "owner" field.
func OwnerHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldOwner, v))
}

// OwnerIsNil applies the IsNil predicate on the "owner" field.
func OwnerIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldOwner))
}

// OwnerNotNil applies the NotNil predicate on the "owner" field.
func OwnerNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldOwner))
}

// OwnerEqualFold applies the EqualFold predicate on the "owner" field.
func OwnerEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldOwner, v))
}

// OwnerContainsFold applies the ContainsFold predicate on the "owner" field.
func OwnerContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldOwner, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCompletedAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldDeletedAt))
}

// HasWorld applies the HasEdge predicate on the "world" edge.
func HasWorld() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, WorldTable, WorldColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWorldWith applies the HasEdge predicate on the "world" edge with a given conditions (other predicates).
func HasWorldWith(preds ...predicate.World) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newWorldStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCheckpoints applies the HasEdge predicate on the "checkpoints" edge.
func HasCheckpoints() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CheckpointsTable, CheckpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCheckpointsWith applies the HasEdge predicate on the "checkpoints" edge with a given conditions (other predicates).
func HasCheckpointsWith(preds ...predicate.Checkpoint) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newCheckpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasModelCalls applies the HasEdge predicate on the "model_calls" edge.
func HasModelCalls() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ModelCallsTable, ModelCallsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasModelCallsWith applies the HasEdge predicate on the "model_calls" edge with a given conditions (other predicates).
func HasModelCallsWith(preds ...predicate.ModelCall) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newModelCallsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
