package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"docvault/internal/model"
	"docvault/internal/service"
	"docvault/internal/storage"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay free of business logic; everything flows through the document service.
func RegisterRoutes(app *fiber.App, store storage.ObjectStore, docSvc service.DocumentService) {
	app.Get("/health", HealthCheck(store))
	app.Get("/healthz", LivenessProbe())

	app.Post("/transactions/:transactionId/documents", UploadDocument(docSvc))
	app.Get("/transactions/:transactionId/documents", ListDocumentsMetadata(docSvc))
	// The /content route must be registered before the :documentId route so a
	// literal "content" segment is not captured as a document id.
	app.Get("/transactions/:transactionId/documents/content", ListDocumentsWithContent(docSvc))
	app.Get("/transactions/:transactionId/documents/:documentId", FetchDocument(docSvc))
	app.Delete("/transactions/:transactionId/documents/:documentId", DeleteDocument(docSvc))
}

// HealthCheck probes the object store with a bounded listing call.
func HealthCheck(store storage.ObjectStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if _, err := store.List(ctx, "health-probe/"); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// UploadDocument accepts a multipart upload (field name: file) plus the
// document codes as form fields and stores the document under the
// transaction.
func UploadDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		transactionID := c.Params("transactionId")

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		req := model.DocumentRequest{
			DocCatCode: c.FormValue("doccatcode"),
			DocTypCode: c.FormValue("doctypcode"),
			LangCode:   c.FormValue("langcode"),
		}

		rec, err := docSvc.Upload(c.UserContext(), transactionID, f, fh.Size, fh.Filename, ct, req)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTransactionIDRequired):
				return writeError(c, fiber.StatusBadRequest, "TRANSACTION_ID_REQUIRED", "transaction id is required")
			case errors.Is(err, service.ErrCategoryRequired):
				return writeError(c, fiber.StatusBadRequest, "CATEGORY_REQUIRED", "document category code is required")
			case errors.Is(err, service.ErrFilenameNoExtension):
				return writeError(c, fiber.StatusBadRequest, "INVALID_FILENAME", "filename must contain an extension")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// ListDocumentsMetadata returns a record per document stored under the
// transaction. An empty transaction yields an empty list, not an error.
func ListDocumentsMetadata(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := docSvc.ListMetadata(c.UserContext(), c.Params("transactionId"))
		if err != nil {
			if errors.Is(err, service.ErrMetadataCorrupt) {
				return writeError(c, fiber.StatusInternalServerError, "METADATA_CORRUPT", "stored document metadata is corrupt")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(records)
	}
}

// ListDocumentsWithContent returns record/content pairs for every document
// stored under the transaction. Content is base64 in the JSON body.
func ListDocumentsWithContent(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := docSvc.ListWithContent(c.UserContext(), c.Params("transactionId"))
		if err != nil {
			if errors.Is(err, service.ErrMetadataCorrupt) {
				return writeError(c, fiber.StatusInternalServerError, "METADATA_CORRUPT", "stored document metadata is corrupt")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(entries)
	}
}

// FetchDocument streams back a document's raw bytes exactly as stored.
func FetchDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := docSvc.Fetch(c.UserContext(), c.Params("transactionId"), c.Params("documentId"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		c.Set(fiber.HeaderContentType, "application/octet-stream")
		return c.Send(data)
	}
}

// DeleteDocument removes a document and reports the outcome as a value.
// A missing document and a backend failure both produce a FAILURE result
// with HTTP 200; deletion never maps to an HTTP error.
func DeleteDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := docSvc.Delete(c.UserContext(), c.Params("transactionId"), c.Params("documentId"))
		return c.JSON(res)
	}
}
