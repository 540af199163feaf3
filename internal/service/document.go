package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"docvault/internal/config"
	"docvault/internal/model"
	"docvault/internal/storage"
)

var (
	ErrTransactionIDRequired = errors.New("transaction id is required")
	ErrCategoryRequired      = errors.New("document category code is required")
	ErrFilenameNoExtension   = errors.New("filename must contain an extension")
	ErrReaderNil             = errors.New("reader is nil")
	// ErrUploadFailed wraps the underlying store/I/O cause of a failed upload.
	ErrUploadFailed = errors.New("document upload failed")
	// ErrMetadataCorrupt marks a listed object whose metadata is missing a
	// required field or malformed.
	ErrMetadataCorrupt = errors.New("document metadata is corrupt")
)

const (
	deletionSuccessMessage = "Document deleted successfully"
	deletionFailureMessage = "Document deletion failed"
)

// DocumentService is the addressing layer between callers and the object
// store. It owns no durable state: identifiers are recomputed from their
// inputs on every call and all content/metadata lives in the store.
type DocumentService interface {
	// Upload stores content under the key derived from (transactionID,
	// req.DocCatCode) and attaches the document metadata schema. Re-uploading
	// the same pair overwrites the prior object; upload is idempotent by
	// category. The returned record is built from the inputs, not re-read
	// from the store.
	Upload(ctx context.Context, transactionID string, r io.Reader, size int64, originalFilename, contentType string, req model.DocumentRequest) (*model.DocumentRecord, error)

	// ListMetadata projects a record from the metadata of every object stored
	// under the transaction. Order follows the store's listing order.
	ListMetadata(ctx context.Context, transactionID string) ([]model.DocumentRecord, error)

	// Fetch returns the raw bytes of a single document, exactly as stored.
	Fetch(ctx context.Context, transactionID, documentID string) ([]byte, error)

	// ListWithContent returns one entry per stored object under the
	// transaction, pairing each record with its content. Entries with
	// identical metadata remain distinct.
	ListWithContent(ctx context.Context, transactionID string) ([]model.DocumentEntry, error)

	// Delete removes a document. The outcome is a value, never an error:
	// a missing object and a backend failure both report FAILURE.
	Delete(ctx context.Context, transactionID, documentID string) model.DeletionResult
}

type documentService struct {
	store storage.ObjectStore
	cfg   config.DocumentConfig
}

// NewDocumentService constructs a DocumentService over the given store.
// cfg.SkipCorruptMetadata relaxes listing operations from fail-fast to
// skip-and-continue when an object's metadata is corrupt.
func NewDocumentService(store storage.ObjectStore, cfg config.DocumentConfig) DocumentService {
	return &documentService{store: store, cfg: cfg}
}

// DocumentID derives the stable document identifier for a transaction and
// category pair: a version-5 UUID over the OID namespace and the
// concatenated pair. Identical inputs always yield the identical identifier,
// so the id is recomputable anywhere without an index.
func DocumentID(transactionID, docCatCode string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(transactionID+docCatCode)).String()
}

// ObjectKey composes the storage path for a document. No other path
// manipulation is applied anywhere.
func ObjectKey(transactionID, documentID string) string {
	return transactionID + "/" + documentID
}

// FileFormat extracts the document file format from a filename: the segment
// after the first dot. "scan.final.png" yields "final".
func FileFormat(filename string) (string, error) {
	parts := strings.Split(filename, ".")
	if len(parts) < 2 || parts[1] == "" {
		return "", fmt.Errorf("%w: %q", ErrFilenameNoExtension, filename)
	}
	return parts[1], nil
}

func (s *documentService) Upload(ctx context.Context, transactionID string, r io.Reader, size int64, originalFilename, contentType string, req model.DocumentRequest) (*model.DocumentRecord, error) {
	if transactionID == "" {
		return nil, ErrTransactionIDRequired
	}
	if req.DocCatCode == "" {
		return nil, ErrCategoryRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	format, err := FileFormat(originalFilename)
	if err != nil {
		return nil, err
	}

	docID := DocumentID(transactionID, req.DocCatCode)
	key := ObjectKey(transactionID, docID)

	_, err = s.store.Put(ctx, key, r, storage.PutOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			model.MetaDocCatCode: req.DocCatCode,
			model.MetaDocTypCode: req.DocTypCode,
			model.MetaLangCode:   req.LangCode,
			model.MetaDocName:    originalFilename,
			model.MetaDocID:      docID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	return &model.DocumentRecord{
		TransactionID: transactionID,
		DocID:         docID,
		DocName:       originalFilename,
		DocCatCode:    req.DocCatCode,
		DocTypCode:    req.DocTypCode,
		DocFileFormat: format,
	}, nil
}

func (s *documentService) ListMetadata(ctx context.Context, transactionID string) ([]model.DocumentRecord, error) {
	names, err := s.store.List(ctx, transactionID+"/")
	if err != nil {
		return nil, fmt.Errorf("list documents for %q: %w", transactionID, err)
	}

	records := make([]model.DocumentRecord, 0, len(names))
	for _, name := range names {
		rec, err := s.projectRecord(ctx, transactionID, name)
		if err != nil {
			if s.cfg.SkipCorruptMetadata && errors.Is(err, ErrMetadataCorrupt) {
				continue
			}
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *documentService) Fetch(ctx context.Context, transactionID, documentID string) ([]byte, error) {
	key := ObjectKey(transactionID, documentID)
	rc, _, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read document %q: %w", key, err)
	}
	return data, nil
}

func (s *documentService) ListWithContent(ctx context.Context, transactionID string) ([]model.DocumentEntry, error) {
	names, err := s.store.List(ctx, transactionID+"/")
	if err != nil {
		return nil, fmt.Errorf("list documents for %q: %w", transactionID, err)
	}

	entries := make([]model.DocumentEntry, 0, len(names))
	for _, name := range names {
		rec, err := s.projectRecord(ctx, transactionID, name)
		if err != nil {
			if s.cfg.SkipCorruptMetadata && errors.Is(err, ErrMetadataCorrupt) {
				continue
			}
			return nil, err
		}
		content, err := s.Fetch(ctx, transactionID, name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, model.DocumentEntry{Record: rec, Content: content})
	}
	return entries, nil
}

func (s *documentService) Delete(ctx context.Context, transactionID, documentID string) model.DeletionResult {
	ok, _ := s.store.Delete(ctx, ObjectKey(transactionID, documentID))
	if !ok {
		return model.DeletionResult{Status: model.DeletionFailure, Message: deletionFailureMessage}
	}
	return model.DeletionResult{Status: model.DeletionSuccess, Message: deletionSuccessMessage}
}

// projectRecord turns the stored metadata of one listed object into a record.
// A listed object with missing or malformed metadata is corrupt; transport
// faults are returned as-is.
func (s *documentService) projectRecord(ctx context.Context, transactionID, objectName string) (model.DocumentRecord, error) {
	key := ObjectKey(transactionID, objectName)
	meta, err := s.store.GetMetadata(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return model.DocumentRecord{}, fmt.Errorf("%w: object %q has no metadata", ErrMetadataCorrupt, key)
		}
		return model.DocumentRecord{}, fmt.Errorf("fetch metadata for %q: %w", key, err)
	}

	for _, field := range []string{model.MetaDocID, model.MetaDocName, model.MetaDocCatCode, model.MetaDocTypCode} {
		if meta[field] == "" {
			return model.DocumentRecord{}, fmt.Errorf("%w: object %q missing field %q", ErrMetadataCorrupt, key, field)
		}
	}

	format, err := FileFormat(meta[model.MetaDocName])
	if err != nil {
		return model.DocumentRecord{}, fmt.Errorf("%w: object %q has unparsable docname %q", ErrMetadataCorrupt, key, meta[model.MetaDocName])
	}

	return model.DocumentRecord{
		TransactionID: transactionID,
		DocID:         meta[model.MetaDocID],
		DocName:       meta[model.MetaDocName],
		DocCatCode:    meta[model.MetaDocCatCode],
		DocTypCode:    meta[model.MetaDocTypCode],
		DocFileFormat: format,
	}, nil
}
