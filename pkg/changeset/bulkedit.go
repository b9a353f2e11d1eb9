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
	Register("bulk-edit-pagination", BulkEditPagination)
}

// tick works around backticks inside the JSX template literals we patch
const tick = "`"

// singleProductsQuery is the generated loader as it ships: one page of 250
// products, no cursor.
const singleProductsQuery = `  const response = await admin.graphql(
    ` + tick + `#graphql
    query ($first: Int!) {
      products(first: $first) {
        edges {
          node {
            id
            title
            handle
            status
            productType
            vendor
            tags
            featuredMedia {
              preview {
                image {
                  url
                  altText
                }
              }
            }
            variants(first: 100) {
              edges {
                node {
                  id
                  title
                  price
                  compareAtPrice
                  sku
                  barcode
                  inventoryQuantity
                }
              }
            }
          }
        }
      }
    }` + tick + `,
    { variables: { first: 250 } }
  );
  const data = await response.json();
  const products = (data.data?.products?.edges || []).map((e) => e.node);`

const paginatedProductsQuery = `  // Paginate through ALL products
  let allProducts = [];
  let hasNextPage = true;
  let cursor = null;
  while (hasNextPage) {
    const response = await admin.graphql(
      ` + tick + `#graphql
      query ($first: Int!, $after: String) {
        products(first: $first, after: $after) {
          pageInfo {
            hasNextPage
            endCursor
          }
          edges {
            node {
              id
              title
              handle
              status
              productType
              vendor
              tags
              featuredMedia {
                preview {
                  image {
                    url
                    altText
                  }
                }
              }
              variants(first: 100) {
                edges {
                  node {
                    id
                    title
                    price
                    compareAtPrice
                    sku
                    barcode
                    inventoryQuantity
                  }
                }
              }
            }
          }
        }
      }` + tick + `,
      { variables: { first: 250, after: cursor } }
    );
    const data = await response.json();
    const edges = data.data?.products?.edges || [];
    allProducts = allProducts.concat(edges.map((e) => e.node));
    hasNextPage = data.data?.products?.pageInfo?.hasNextPage || false;
    cursor = data.data?.products?.pageInfo?.endCursor || null;
  }
  const products = allProducts;`

// BulkEditPagination upgrades the bulk-edit route: the loader paginates
// through every product instead of fetching a single page, and Variant Title
// becomes filterable.
func BulkEditPagination() []patch.ChangeSpec {
	return []patch.ChangeSpec{
		{
			ID:          "paginate-products-query",
			Description: "Replace single products query with paginated version",
			Anchor:      singleProductsQuery,
			Replacement: paginatedProductsQuery,
			GuardMarker: "let allProducts = [];",
			Limit:       1,
		},
		{
			ID:          "filter-variant-title",
			Description: "Add Variant Title to FILTER_FIELDS",
			Anchor:      `  { value: "sku", label: "SKU", type: "text" },`,
			Replacement: `  { value: "sku", label: "SKU", type: "text" },` + "\n" +
				`  { value: "variantTitle", label: "Variant Title", type: "text" },`,
			GuardMarker: `"variantTitle", label: "Variant Title"`,
			Limit:       1,
		},
		{
			ID:          "eval-variant-title",
			Description: "Add variantTitle case to evaluateFilter",
			Anchor: `    case "sku":` + "\n" +
				`      value = product.variants?.edges?.[0]?.node?.sku || "";` + "\n" +
				`      break;` + "\n" +
				`    case "tags":`,
			Replacement: `    case "sku":` + "\n" +
				`      value = product.variants?.edges?.[0]?.node?.sku || "";` + "\n" +
				`      break;` + "\n" +
				`    case "variantTitle":` + "\n" +
				`      value = (product.variants?.edges || []).map(e => e.node?.title || "").join(", ");` + "\n" +
				`      break;` + "\n" +
				`    case "tags":`,
			GuardMarker: `case "variantTitle":`,
			Limit:       1,
		},
	}
}
