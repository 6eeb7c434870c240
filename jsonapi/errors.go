package jsonapi

import (
	"github.com/neuronlabs/jsonapi-client/errors/class"
)

// Error classes raised while deserializing a JSON:API document. Every one
// is a client-side parsing failure; a malformed document never reaches the
// network, so these are always class.Client.
var (
	ClassInvalidDocumentStructure     = class.New(class.Client, "jsonapi.invalid_document_structure")
	ClassTopLevelEntryMissing         = class.New(class.Client, "jsonapi.top_level_entry_missing")
	ClassTopLevelDataAndErrorsCoexist = class.New(class.Client, "jsonapi.top_level_data_and_errors_coexist")
	ClassInvalidResourceStructure     = class.New(class.Client, "jsonapi.invalid_resource_structure")
	ClassResourceTypeMissing          = class.New(class.Client, "jsonapi.resource_type_missing")
	ClassResourceIDMissing            = class.New(class.Client, "jsonapi.resource_id_missing")
	ClassUnknownTopLevelMember        = class.New(class.Client, "jsonapi.unknown_top_level_member")
)
