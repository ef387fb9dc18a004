// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package configfile loads configuration files into a [Namespace] whose values
// are reached by dotted keys.
//
// The format is chosen by file extension:
//   - .json: plain [JSON]
//   - .jsonc: JSON with comments and trailing commas, via [jsonc]
//   - .yaml, .yml: [YAML]
//
// Any other extension is read as JSON. The top-level value must be an object.
//
// Example:
//
//	ns, err := configfile.Load("settings.yaml")
//	if err != nil {
//		return err
//	}
//	indent, err := ns.Int("output.indent")
//
// [JSON]: https://www.json.org
// [jsonc]: https://github.com/tidwall/jsonc
// [YAML]: https://yaml.org
package configfile
