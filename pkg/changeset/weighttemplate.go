// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package changeset

import (
	"github.com/walteh/patchrc/pkg/patch"
)

func init() {
	Register("weight-template", WeightTemplate)
}

// WeightTemplate adds two editable fields to the bulk-edit route: Weight
// (variant-level numeric, GraphQL weight/weightUnit) and Product Template
// (product-level text, GraphQL templateSuffix), threading both through the
// query, the editable/filter field lists, and the save mutations.
func WeightTemplate() []patch.ChangeSpec {
	return []patch.ChangeSpec{
		{
			ID:          "query-template-suffix",
			Description: "Add templateSuffix to GraphQL product query",
			Anchor: `            tags` + "\n" +
				`            featuredMedia {`,
			Replacement: `            tags` + "\n" +
				`            templateSuffix` + "\n" +
				`            featuredMedia {`,
			GuardMarker: `            templateSuffix` + "\n" +
				`            featuredMedia {`,
			Limit: 1,
		},
		{
			ID:          "query-weight",
			Description: "Add weight + weightUnit to GraphQL variant query",
			Anchor: `                  inventoryQuantity` + "\n" +
				`                }`,
			Replacement: `                  inventoryQuantity` + "\n" +
				`                  weight` + "\n" +
				`                  weightUnit` + "\n" +
				`                }`,
			GuardMarker: `                  weight` + "\n" +
				`                  weightUnit`,
			Limit: 1,
		},
		{
			ID:          "editable-weight",
			Description: "Add Weight to EDITABLE_FIELDS",
			Anchor:      `  { value: "barcode", label: "Barcode", icon: "📊", category: "text", level: "variant", accessor: (v) => v.barcode || "" },`,
			Replacement: `  { value: "barcode", label: "Barcode", icon: "📊", category: "text", level: "variant", accessor: (v) => v.barcode || "" },` + "\n" +
				`  { value: "weight", label: "Weight", icon: "⚖️", category: "numeric", level: "variant", accessor: (v) => v.weight || "0" },`,
			GuardMarker: `"weight", label: "Weight", icon:`,
			Limit:       1,
		},
		{
			ID:          "editable-template",
			Description: "Add Product Template to EDITABLE_FIELDS",
			Anchor:      `  { value: "status", label: "Status", icon: "🔄", category: "select", level: "product", accessor: null, options: ["ACTIVE", "DRAFT", "ARCHIVED"] },`,
			Replacement: `  { value: "status", label: "Status", icon: "🔄", category: "select", level: "product", accessor: null, options: ["ACTIVE", "DRAFT", "ARCHIVED"] },` + "\n" +
				`  { value: "templateSuffix", label: "Product Template", icon: "📄", category: "text", level: "product", accessor: null },`,
			GuardMarker: `"templateSuffix", label: "Product Template"`,
			Limit:       1,
		},
		{
			ID:          "variant-map-weight",
			Description: "Add weight to variant mutation mapping",
			Anchor:      `            else if (change.field === "barcode") v.barcode = change.newValue;`,
			Replacement: `            else if (change.field === "barcode") v.barcode = change.newValue;` + "\n" +
				`            else if (change.field === "weight") v.weight = parseFloat(change.newValue);`,
			GuardMarker: `change.field === "weight"`,
			Limit:       1,
		},
		{
			ID:          "variant-return-weight",
			Description: "Add weight to variant mutation return fields",
			Anchor:      `productVariants { id price compareAtPrice sku barcode }`,
			Replacement: `productVariants { id price compareAtPrice sku barcode weight weightUnit }`,
			GuardMarker: `weight weightUnit }`,
			Limit:       1,
		},
		{
			ID:          "product-filter-template",
			Description: "Add templateSuffix to product-level changes filter",
			Anchor:      `const productLevelChanges = productChanges.filter(c => ["title", "vendor", "productType", "status", "tags"].includes(c.field));`,
			Replacement: `const productLevelChanges = productChanges.filter(c => ["title", "vendor", "productType", "status", "tags", "templateSuffix"].includes(c.field));`,
			GuardMarker: `"tags", "templateSuffix"].includes(c.field)`,
			Limit:       1,
		},
		{
			ID:          "product-map-template",
			Description: "Add templateSuffix to product mutation mapping",
			Anchor:      `            else if (change.field === "tags") productInput.tags = change.newValue.split(",").map(t => t.trim()).filter(Boolean);`,
			Replacement: `            else if (change.field === "tags") productInput.tags = change.newValue.split(",").map(t => t.trim()).filter(Boolean);` + "\n" +
				`            else if (change.field === "templateSuffix") productInput.templateSuffix = change.newValue;`,
			GuardMarker: `change.field === "templateSuffix"`,
			Limit:       1,
		},
		{
			ID:          "product-return-template",
			Description: "Add templateSuffix to product mutation return fields",
			Anchor:      `product { id title vendor productType status tags }`,
			Replacement: `product { id title vendor productType status tags templateSuffix }`,
			GuardMarker: `status tags templateSuffix }`,
			Limit:       1,
		},
		{
			ID:          "filter-weight-template",
			Description: "Add Weight + Product Template to FILTER_FIELDS",
			Anchor:      `  { value: "inventoryQuantity", label: "Inventory", type: "number" },`,
			Replacement: `  { value: "inventoryQuantity", label: "Inventory", type: "number" },` + "\n" +
				`  { value: "weight", label: "Weight", type: "number" },` + "\n" +
				`  { value: "templateSuffix", label: "Product Template", type: "text" },`,
			GuardMarker: `"weight", label: "Weight", type: "number"`,
			Limit:       1,
		},
		{
			ID:          "eval-weight-template",
			Description: "Add weight + templateSuffix cases to evaluateFilter",
			Anchor: `    case "sku":` + "\n" +
				`      value = product.variants?.edges?.[0]?.node?.sku || "";` + "\n" +
				`      break;`,
			Replacement: `    case "sku":` + "\n" +
				`      value = product.variants?.edges?.[0]?.node?.sku || "";` + "\n" +
				`      break;` + "\n" +
				`    case "weight":` + "\n" +
				`      value = String(product.variants?.edges?.[0]?.node?.weight ?? "0");` + "\n" +
				`      break;` + "\n" +
				`    case "templateSuffix":` + "\n" +
				`      value = product.templateSuffix || "";` + "\n" +
				`      break;`,
			GuardMarker: `case "weight":`,
			Limit:       1,
		},
	}
}
