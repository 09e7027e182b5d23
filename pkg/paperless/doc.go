// Package paperless provides types, interfaces, and helpers for working
// with a paperless-ngx style document management REST API.
//
// # Overview
//
// The paperless package defines the domain types (Document, Tag,
// Correspondent, DocumentType, StoragePath, CustomField, ShareLink,
// Task) and the interfaces for resource-oriented clients. A concrete
// implementation is provided by the plclient package, which wires
// configuration, credentials, transport, retry, and error mapping.
// Most consumers should import plclient to construct a client and then
// interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/paperstack-io/paperless-client/pkg/paperless"
//	  "github.com/paperstack-io/paperless-client/pkg/plclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := plclient.NewWithToken("https://paperless.example.com", "token")
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  docs, err := cli.Documents().List(ctx, paperless.NewQueryParams().WithPageSize(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = docs
//	}
//
// # Queries and pagination
//
// Use QueryParams for list options (page, page_size, ordering, search,
// raw filters). List responses are Page[T] values carrying the
// authoritative total count and opaque next/previous cursors. Each
// resource client's Iter method returns a PageIterator that walks all
// pages lazily and strictly sequentially:
//
//	it := cli.Documents().Iter(ctx, nil)
//	for it.HasNext() {
//	  doc, err := it.Next()
//	  if err != nil { break }
//	  _ = doc
//	}
//
// # Errors
//
// Every failed call surfaces a single *Error carrying one member of a
// closed taxonomy (transport, unauthorized, forbidden, not_found,
// conflict, validation, rate_limited, server_error, decode,
// credential_missing, invalid_request). Helpers such as IsNotFound,
// IsValidation, and IsTransient make branching straightforward.
//
// # Uploads
//
// Documents().Upload streams a multipart body from the supplied reader
// without buffering the file, so memory use is bounded regardless of
// file size. The server ingests asynchronously; Upload returns the task
// UUID, and Tasks().Wait polls it to completion with exponential
// backoff.
package paperless
