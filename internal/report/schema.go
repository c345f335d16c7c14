package report

// Schema is the JSON Schema (Draft 2020-12) for cesar encrypt --format=json.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/arloliu/cesar/encrypt-report.schema.json",
  "title": "Cesar Encrypt Report",
  "description": "Output schema for cesar encrypt --format=json",
  "type": "object",
  "required": ["version", "config", "results"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Schema version (semver)"
    },
    "config": { "$ref": "#/$defs/Config" },
    "results": {
      "type": "array",
      "items": { "$ref": "#/$defs/Result" }
    }
  },
  "$defs": {
    "Config": {
      "type": "object",
      "required": ["key", "group_size", "possibilities", "index_digits", "start_index", "layout", "fingerprint"],
      "properties": {
        "key": { "type": "integer", "not": { "const": 0 } },
        "group_size": { "type": "integer", "minimum": 1, "maximum": 9 },
        "possibilities": { "type": "integer", "minimum": 1 },
        "index_digits": { "type": "integer", "minimum": 1, "maximum": 255 },
        "start_index": { "type": "integer", "minimum": 0 },
        "layout": { "enum": ["Delimited", "FixedWidth"] },
        "fingerprint": {
          "type": "string",
          "pattern": "^[0-9a-f]{16}$",
          "description": "xxHash64 of the encrypt alphabet"
        }
      }
    },
    "Result": {
      "type": "object",
      "required": ["word", "ciphertext"],
      "properties": {
        "word": { "type": "string" },
        "ciphertext": { "type": "string" }
      }
    }
  }
}`

// ArchiveSchema is the JSON Schema (Draft 2020-12) for cesar unpack --format=json.
const ArchiveSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/arloliu/cesar/archive-report.schema.json",
  "title": "Cesar Archive Report",
  "description": "Output schema for cesar unpack --format=json",
  "type": "object",
  "required": ["version", "layout", "compression", "endianness", "fingerprint", "alphabet_match", "count", "ciphertexts"],
  "properties": {
    "version": { "type": "string" },
    "layout": { "enum": ["Delimited", "FixedWidth"] },
    "compression": { "enum": ["None", "Zstd", "S2", "LZ4"] },
    "endianness": { "enum": ["little", "big"] },
    "fingerprint": { "type": "string", "pattern": "^[0-9a-f]{16}$" },
    "alphabet_match": { "type": "boolean" },
    "count": { "type": "integer", "minimum": 0 },
    "ciphertexts": {
      "type": "array",
      "items": { "type": "string" }
    }
  }
}`
