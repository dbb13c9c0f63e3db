// SPDX-License-Identifier: MPL-2.0

package user

// Schema is the JSON Schema (draft 2020-12) for the wire form. It encodes the
// same contract the decoders enforce: an object with all five fields present
// and correctly typed, unknown keys tolerated. Schema checking is a
// diagnostic surface; the decoders remain the authority on accept/reject.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://userbench.dev/schemas/user.json",
  "title": "User",
  "type": "object",
  "properties": {
    "id": {"type": "integer"},
    "name": {"type": "string"},
    "email": {"type": "string"},
    "age": {"type": "integer"},
    "active": {"type": "boolean"}
  },
  "required": ["id", "name", "email", "age", "active"],
  "additionalProperties": true
}`
