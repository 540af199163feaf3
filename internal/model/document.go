package model

// Metadata keys stored alongside every document object. They travel through
// the object store's user-metadata channel and must round-trip exactly.
const (
	MetaDocCatCode = "doccatcode"
	MetaDocTypCode = "doctypcode"
	MetaLangCode   = "langcode"
	MetaDocName    = "docname"
	MetaDocID      = "docid"
)

// DocumentRequest carries the descriptive codes supplied by the caller at
// upload time.
type DocumentRequest struct {
	DocCatCode string `json:"doccatcode"`
	DocTypCode string `json:"doctypcode"`
	LangCode   string `json:"langcode"`
}

// DocumentRecord is the metadata-derived view of a stored document.
// It is never persisted on its own: it is built from the inputs at upload
// time or projected from stored object metadata on listing.
type DocumentRecord struct {
	TransactionID string `json:"transaction_id"`
	DocID         string `json:"doc_id"`
	DocName       string `json:"doc_name"`
	DocCatCode    string `json:"doc_cat_code"`
	DocTypCode    string `json:"doc_typ_code"`
	DocFileFormat string `json:"doc_file_format"`
}

// DocumentEntry pairs a record with the raw content of the object it was
// projected from. Aggregations return one entry per stored object, so two
// objects that happen to share identical metadata stay distinct.
type DocumentEntry struct {
	Record  DocumentRecord `json:"record"`
	Content []byte         `json:"content"`
}

// Deletion outcome values.
const (
	DeletionSuccess = "SUCCESS"
	DeletionFailure = "FAILURE"
)

// DeletionResult reports the outcome of a delete request. Absence and backend
// failure are reported identically; deletion never surfaces as an error.
type DeletionResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
