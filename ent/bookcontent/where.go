// Code generated by ent, DO NOT EDIT.

package bookcontent

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ketabio/bookserver/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BookContent {
	return predicate.BookContent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BookContent {
	return predicate.BookContent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BookContent {
	return predicate.BookContent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BookContent {
	return predicate.BookContent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BookContent {
	return predicate.BookContent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BookContent {
	return predicate.BookContent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BookContent {
	return predicate.BookContent(sql.FieldLTE(FieldID, id))
}

// PageNumber applies equality check predicate on the "page_number" field. It's identical to PageNumberEQ.
func PageNumber(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldPageNumber, v))
}

// ParagraphNumber applies equality check predicate on the "paragraph_number" field. It's identical to ParagraphNumberEQ.
func ParagraphNumber(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldParagraphNumber, v))
}

// Order applies equality check predicate on the "order" field. It's identical to OrderEQ.
func Order(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldOrder, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldText, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldDescription, v))
}

// SoundPath applies equality check predicate on the "sound_path" field. It's identical to SoundPathEQ.
func SoundPath(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldSoundPath, v))
}

// VideoPath applies equality check predicate on the "video_path" field. It's identical to VideoPathEQ.
func VideoPath(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldVideoPath, v))
}

// IsIndex applies equality check predicate on the "is_index" field. It's identical to IsIndexEQ.
func IsIndex(v bool) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldIsIndex, v))
}

// IndexTitle applies equality check predicate on the "index_title" field. It's identical to IndexTitleEQ.
func IndexTitle(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldIndexTitle, v))
}

// IndexLevel applies equality check predicate on the "index_level" field. It's identical to IndexLevelEQ.
func IndexLevel(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldIndexLevel, v))
}

// PageNumberEQ applies the EQ predicate on the "page_number" field.
func PageNumberEQ(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldPageNumber, v))
}

// PageNumberNEQ applies the NEQ predicate on the "page_number" field.
func PageNumberNEQ(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldNEQ(FieldPageNumber, v))
}

// PageNumberIn applies the In predicate on the "page_number" field.
func PageNumberIn(vs ...int) predicate.BookContent {
	return predicate.BookContent(sql.FieldIn(FieldPageNumber, vs...))
}

// PageNumberNotIn applies the NotIn predicate on the "page_number" field.
func PageNumberNotIn(vs ...int) predicate.BookContent {
	return predicate.BookContent(sql.FieldNotIn(FieldPageNumber, vs...))
}

// PageNumberGT applies the GT predicate on the "page_number" field.
func PageNumberGT(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldGT(FieldPageNumber, v))
}

// PageNumberGTE applies the GTE predicate on the "page_number" field.
func PageNumberGTE(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldGTE(FieldPageNumber, v))
}

// PageNumberLT applies the LT predicate on the "page_number" field.
func PageNumberLT(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldLT(FieldPageNumber, v))
}

// PageNumberLTE applies the LTE predicate on the "page_number" field.
func PageNumberLTE(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldLTE(FieldPageNumber, v))
}

// ParagraphNumberEQ applies the EQ predicate on the "paragraph_number" field.
func ParagraphNumberEQ(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldParagraphNumber, v))
}

// ParagraphNumberNEQ applies the NEQ predicate on the "paragraph_number" field.
func ParagraphNumberNEQ(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldNEQ(FieldParagraphNumber, v))
}

// ParagraphNumberIn applies the In predicate on the "paragraph_number" field.
func ParagraphNumberIn(vs ...int) predicate.BookContent {
	return predicate.BookContent(sql.FieldIn(FieldParagraphNumber, vs...))
}

// ParagraphNumberNotIn applies the NotIn predicate on the "paragraph_number" field.
func ParagraphNumberNotIn(vs ...int) predicate.BookContent {
	return predicate.BookContent(sql.FieldNotIn(FieldParagraphNumber, vs...))
}

// ParagraphNumberGT applies the GT predicate on the "paragraph_number" field.
func ParagraphNumberGT(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldGT(FieldParagraphNumber, v))
}

// ParagraphNumberGTE applies the GTE predicate on the "paragraph_number" field.
func ParagraphNumberGTE(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldGTE(FieldParagraphNumber, v))
}

// ParagraphNumberLT applies the LT predicate on the "paragraph_number" field.
func ParagraphNumberLT(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldLT(FieldParagraphNumber, v))
}

// ParagraphNumberLTE applies the LTE predicate on the "paragraph_number" field.
func ParagraphNumberLTE(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldLTE(FieldParagraphNumber, v))
}

// OrderEQ applies the EQ predicate on the "order" field.
func OrderEQ(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldOrder, v))
}

// OrderNEQ applies the NEQ predicate on the "order" field.
func OrderNEQ(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldNEQ(FieldOrder, v))
}

// OrderIn applies the In predicate on the "order" field.
func OrderIn(vs ...int) predicate.BookContent {
	return predicate.BookContent(sql.FieldIn(FieldOrder, vs...))
}

// OrderNotIn applies the NotIn predicate on the "order" field.
func OrderNotIn(vs ...int) predicate.BookContent {
	return predicate.BookContent(sql.FieldNotIn(FieldOrder, vs...))
}

// OrderGT applies the GT predicate on the "order" field.
func OrderGT(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldGT(FieldOrder, v))
}

// OrderGTE applies the GTE predicate on the "order" field.
func OrderGTE(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldGTE(FieldOrder, v))
}

// OrderLT applies the LT predicate on the "order" field.
func OrderLT(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldLT(FieldOrder, v))
}

// OrderLTE applies the LTE predicate on the "order" field.
func OrderLTE(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldLTE(FieldOrder, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.BookContent {
	return predicate.BookContent(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.BookContent {
	return predicate.BookContent(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldHasSuffix(FieldText, v))
}

// TextIsNil applies the IsNil predicate on the "text" field.
func TextIsNil() predicate.BookContent {
	return predicate.BookContent(sql.FieldIsNull(FieldText))
}

// TextNotNil applies the NotNil predicate on the "text" field.
func TextNotNil() predicate.BookContent {
	return predicate.BookContent(sql.FieldNotNull(FieldText))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldContainsFold(FieldText, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.BookContent {
	return predicate.BookContent(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.BookContent {
	return predicate.BookContent(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.BookContent {
	return predicate.BookContent(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.BookContent {
	return predicate.BookContent(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldContainsFold(FieldDescription, v))
}

// SoundPathEQ applies the EQ predicate on the "sound_path" field.
func SoundPathEQ(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldSoundPath, v))
}

// SoundPathNEQ applies the NEQ predicate on the "sound_path" field.
func SoundPathNEQ(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldNEQ(FieldSoundPath, v))
}

// SoundPathIn applies the In predicate on the "sound_path" field.
func SoundPathIn(vs ...string) predicate.BookContent {
	return predicate.BookContent(sql.FieldIn(FieldSoundPath, vs...))
}

// SoundPathNotIn applies the NotIn predicate on the "sound_path" field.
func SoundPathNotIn(vs ...string) predicate.BookContent {
	return predicate.BookContent(sql.FieldNotIn(FieldSoundPath, vs...))
}

// SoundPathGT applies the GT predicate on the "sound_path" field.
func SoundPathGT(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldGT(FieldSoundPath, v))
}

// SoundPathGTE applies the GTE predicate on the "sound_path" field.
func SoundPathGTE(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldGTE(FieldSoundPath, v))
}

// SoundPathLT applies the LT predicate on the "sound_path" field.
func SoundPathLT(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldLT(FieldSoundPath, v))
}

// SoundPathLTE applies the LTE predicate on the "sound_path" field.
func SoundPathLTE(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldLTE(FieldSoundPath, v))
}

// SoundPathContains applies the Contains predicate on the "sound_path" field.
func SoundPathContains(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldContains(FieldSoundPath, v))
}

// SoundPathHasPrefix applies the HasPrefix predicate on the "sound_path" field.
func SoundPathHasPrefix(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldHasPrefix(FieldSoundPath, v))
}

// SoundPathHasSuffix applies the HasSuffix predicate on the "sound_path" field.
func SoundPathHasSuffix(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldHasSuffix(FieldSoundPath, v))
}

// SoundPathIsNil applies the IsNil predicate on the "sound_path" field.
func SoundPathIsNil() predicate.BookContent {
	return predicate.BookContent(sql.FieldIsNull(FieldSoundPath))
}

// SoundPathNotNil applies the NotNil predicate on the "sound_path" field.
func SoundPathNotNil() predicate.BookContent {
	return predicate.BookContent(sql.FieldNotNull(FieldSoundPath))
}

// SoundPathEqualFold applies the EqualFold predicate on the "sound_path" field.
func SoundPathEqualFold(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEqualFold(FieldSoundPath, v))
}

// SoundPathContainsFold applies the ContainsFold predicate on the "sound_path" field.
func SoundPathContainsFold(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldContainsFold(FieldSoundPath, v))
}

// VideoPathEQ applies the EQ predicate on the "video_path" field.
func VideoPathEQ(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldVideoPath, v))
}

// VideoPathNEQ applies the NEQ predicate on the "video_path" field.
func VideoPathNEQ(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldNEQ(FieldVideoPath, v))
}

// VideoPathIn applies the In predicate on the "video_path" field.
func VideoPathIn(vs ...string) predicate.BookContent {
	return predicate.BookContent(sql.FieldIn(FieldVideoPath, vs...))
}

// VideoPathNotIn applies the NotIn predicate on the "video_path" field.
func VideoPathNotIn(vs ...string) predicate.BookContent {
	return predicate.BookContent(sql.FieldNotIn(FieldVideoPath, vs...))
}

// VideoPathGT applies the GT predicate on the "video_path" field.
func VideoPathGT(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldGT(FieldVideoPath, v))
}

// VideoPathGTE applies the GTE predicate on the "video_path" field.
func VideoPathGTE(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldGTE(FieldVideoPath, v))
}

// VideoPathLT applies the LT predicate on the "video_path" field.
func VideoPathLT(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldLT(FieldVideoPath, v))
}

// VideoPathLTE applies the LTE predicate on the "video_path" field.
func VideoPathLTE(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldLTE(FieldVideoPath, v))
}

// VideoPathContains applies the Contains predicate on the "video_path" field.
func VideoPathContains(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldContains(FieldVideoPath, v))
}

// VideoPathHasPrefix applies the HasPrefix predicate on the "video_path" field.
func VideoPathHasPrefix(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldHasPrefix(FieldVideoPath, v))
}

// VideoPathHasSuffix applies the HasSuffix predicate on the "video_path" field.
func VideoPathHasSuffix(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldHasSuffix(FieldVideoPath, v))
}

// VideoPathIsNil applies the IsNil predicate on the "video_path" field.
func VideoPathIsNil() predicate.BookContent {
	return predicate.BookContent(sql.FieldIsNull(FieldVideoPath))
}

// VideoPathNotNil applies the NotNil predicate on the "video_path" field.
func VideoPathNotNil() predicate.BookContent {
	return predicate.BookContent(sql.FieldNotNull(FieldVideoPath))
}

// VideoPathEqualFold applies the EqualFold predicate on the "video_path" field.
func VideoPathEqualFold(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEqualFold(FieldVideoPath, v))
}

// VideoPathContainsFold applies the ContainsFold predicate on the "video_path" field.
func VideoPathContainsFold(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldContainsFold(FieldVideoPath, v))
}

// ImagePathsIsNil applies the IsNil predicate on the "image_paths" field.
func ImagePathsIsNil() predicate.BookContent {
	return predicate.BookContent(sql.FieldIsNull(FieldImagePaths))
}

// ImagePathsNotNil applies the NotNil predicate on the "image_paths" field.
func ImagePathsNotNil() predicate.BookContent {
	return predicate.BookContent(sql.FieldNotNull(FieldImagePaths))
}

// IsIndexEQ applies the EQ predicate on the "is_index" field.
func IsIndexEQ(v bool) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldIsIndex, v))
}

// IsIndexNEQ applies the NEQ predicate on the "is_index" field.
func IsIndexNEQ(v bool) predicate.BookContent {
	return predicate.BookContent(sql.FieldNEQ(FieldIsIndex, v))
}

// IndexTitleEQ applies the EQ predicate on the "index_title" field.
func IndexTitleEQ(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldIndexTitle, v))
}

// IndexTitleNEQ applies the NEQ predicate on the "index_title" field.
func IndexTitleNEQ(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldNEQ(FieldIndexTitle, v))
}

// IndexTitleIn applies the In predicate on the "index_title" field.
func IndexTitleIn(vs ...string) predicate.BookContent {
	return predicate.BookContent(sql.FieldIn(FieldIndexTitle, vs...))
}

// IndexTitleNotIn applies the NotIn predicate on the "index_title" field.
func IndexTitleNotIn(vs ...string) predicate.BookContent {
	return predicate.BookContent(sql.FieldNotIn(FieldIndexTitle, vs...))
}

// IndexTitleGT applies the GT predicate on the "index_title" field.
func IndexTitleGT(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldGT(FieldIndexTitle, v))
}

// IndexTitleGTE applies the GTE predicate on the "index_title" field.
func IndexTitleGTE(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldGTE(FieldIndexTitle, v))
}

// IndexTitleLT applies the LT predicate on the "index_title" field.
func IndexTitleLT(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldLT(FieldIndexTitle, v))
}

// IndexTitleLTE applies the LTE predicate on the "index_title" field.
func IndexTitleLTE(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldLTE(FieldIndexTitle, v))
}

// IndexTitleContains applies the Contains predicate on the "index_title" field.
func IndexTitleContains(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldContains(FieldIndexTitle, v))
}

// IndexTitleHasPrefix applies the HasPrefix predicate on the "index_title" field.
func IndexTitleHasPrefix(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldHasPrefix(FieldIndexTitle, v))
}

// IndexTitleHasSuffix applies the HasSuffix predicate on the "index_title" field.
func IndexTitleHasSuffix(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldHasSuffix(FieldIndexTitle, v))
}

// IndexTitleIsNil applies the IsNil predicate on the "index_title" field.
func IndexTitleIsNil() predicate.BookContent {
	return predicate.BookContent(sql.FieldIsNull(FieldIndexTitle))
}

// IndexTitleNotNil applies the NotNil predicate on the "index_title" field.
func IndexTitleNotNil() predicate.BookContent {
	return predicate.BookContent(sql.FieldNotNull(FieldIndexTitle))
}

// IndexTitleEqualFold applies the EqualFold predicate on the "index_title" field.
func IndexTitleEqualFold(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldEqualFold(FieldIndexTitle, v))
}

// IndexTitleContainsFold applies the ContainsFold predicate on the "index_title" field.
func IndexTitleContainsFold(v string) predicate.BookContent {
	return predicate.BookContent(sql.FieldContainsFold(FieldIndexTitle, v))
}

// IndexLevelEQ applies the EQ predicate on the "index_level" field.
func IndexLevelEQ(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldEQ(FieldIndexLevel, v))
}

// IndexLevelNEQ applies the NEQ predicate on the "index_level" field.
func IndexLevelNEQ(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldNEQ(FieldIndexLevel, v))
}

// IndexLevelIn applies the In predicate on the "index_level" field.
func IndexLevelIn(vs ...int) predicate.BookContent {
	return predicate.BookContent(sql.FieldIn(FieldIndexLevel, vs...))
}

// IndexLevelNotIn applies the NotIn predicate on the "index_level" field.
func IndexLevelNotIn(vs ...int) predicate.BookContent {
	return predicate.BookContent(sql.FieldNotIn(FieldIndexLevel, vs...))
}

// IndexLevelGT applies the GT predicate on the "index_level" field.
func IndexLevelGT(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldGT(FieldIndexLevel, v))
}

// IndexLevelGTE applies the GTE predicate on the "index_level" field.
func IndexLevelGTE(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldGTE(FieldIndexLevel, v))
}

// IndexLevelLT applies the LT predicate on the "index_level" field.
func IndexLevelLT(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldLT(FieldIndexLevel, v))
}

// IndexLevelLTE applies the LTE predicate on the "index_level" field.
func IndexLevelLTE(v int) predicate.BookContent {
	return predicate.BookContent(sql.FieldLTE(FieldIndexLevel, v))
}

// HasBook applies the HasEdge predicate on the "book" edge.
func HasBook() predicate.BookContent {
	return predicate.BookContent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BookTable, BookColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBookWith applies the HasEdge predicate on the "book" edge with a given conditions (other predicates).
func HasBookWith(preds ...predicate.Book) predicate.BookContent {
	return predicate.BookContent(func(s *sql.Selector) {
		step := newBookStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BookContent) predicate.BookContent {
	return predicate.BookContent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BookContent) predicate.BookContent {
	return predicate.BookContent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BookContent) predicate.BookContent {
	return predicate.BookContent(sql.NotPredicates(p))
}
