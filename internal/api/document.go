package api

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Document assembles the OpenAPI description of every served contract.
// The checked-in resources/openapi.yaml mirrors this document, the two are
// kept in sync by cmd/specdiff.
func Document() *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Validation Patterns API",
			Description: "An example of a RESTful API demonstrating pagination, oneOf, allOf and response verbosity patterns",
			Version:     "1.0.0",
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/healthz", healthPath()),
			openapi3.WithPath("/items", itemsPath()),
			openapi3.WithPath("/pets", petsPath()),
			openapi3.WithPath("/shapes/oneof", shapesPath()),
			openapi3.WithPath("/products/allof", productsPath()),
			openapi3.WithPath("/laptops", laptopsPath()),
			openapi3.WithPath("/laptops/{laptopID}", laptopPath()),
		),
		Components: &openapi3.Components{
			Schemas: componentSchemas(),
		},
	}
}

func healthPath() *openapi3.PathItem {
	return &openapi3.PathItem{
		Get: &openapi3.Operation{
			Summary:     "Health check",
			OperationID: "healthCheck",
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(200, textResponse("OK")),
			),
		},
	}
}

func itemsPath() *openapi3.PathItem {
	return &openapi3.PathItem{
		Get: &openapi3.Operation{
			Tags:        []string{"Items"},
			Summary:     "Get a paginated list of items",
			OperationID: "listItems",
			Parameters: openapi3.Parameters{
				queryParam("page", "Page number (starting from 1)",
					intSchema(floatPtr(1), nil, 1)),
				queryParam("size", "Number of items per page (max 50)",
					intSchema(floatPtr(1), floatPtr(50), 10)),
			},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(200, jsonResponse("Successful response", schemaRef("PaginatedItems"))),
				openapi3.WithStatus(400, jsonResponse("Invalid pagination parameters", schemaRef("ValidationError"))),
				openapi3.WithStatus(404, jsonResponse("Page not found", schemaRef("Error"))),
			),
		},
	}
}

func petsPath() *openapi3.PathItem {
	petSchema := &openapi3.SchemaRef{Value: &openapi3.Schema{
		OneOf: openapi3.SchemaRefs{schemaRef("Cat"), schemaRef("Dog")},
		Discriminator: &openapi3.Discriminator{
			PropertyName: "petType",
		},
	}}
	echoSchema := &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: objectType(),
		Properties: openapi3.Schemas{
			"message": stringSchemaRef(),
			"pet": {Value: &openapi3.Schema{
				OneOf: openapi3.SchemaRefs{schemaRef("Cat"), schemaRef("Dog")},
			}},
		},
		Required: []string{"message", "pet"},
	}}

	return &openapi3.PathItem{
		Post: &openapi3.Operation{
			Summary:     "Add a new pet",
			OperationID: "addPet",
			RequestBody: jsonRequestBody(petSchema),
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(200, jsonResponse("Pet added successfully", echoSchema)),
				openapi3.WithStatus(400, jsonResponse("Validation failed", schemaRef("ValidationError"))),
			),
		},
	}
}

func shapesPath() *openapi3.PathItem {
	shapeSchema := &openapi3.SchemaRef{Value: &openapi3.Schema{
		OneOf: openapi3.SchemaRefs{schemaRef("Rectangle"), schemaRef("Circle")},
		Discriminator: &openapi3.Discriminator{
			PropertyName: "shape_type",
		},
	}}
	echoSchema := &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: objectType(),
		Properties: openapi3.Schemas{
			"message": stringSchemaRef(),
			"shape": {Value: &openapi3.Schema{
				OneOf: openapi3.SchemaRefs{schemaRef("Rectangle"), schemaRef("Circle")},
			}},
			"validation_details": {Value: &openapi3.Schema{Type: objectType()}},
		},
		Required: []string{"message", "shape", "validation_details"},
	}}

	return &openapi3.PathItem{
		Post: &openapi3.Operation{
			Summary:     "Create a shape",
			OperationID: "createShape",
			RequestBody: jsonRequestBody(shapeSchema),
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(200, jsonResponse("Shape created successfully", echoSchema)),
				openapi3.WithStatus(400, jsonResponse("Validation failed", schemaRef("ValidationError"))),
			),
		},
	}
}

func productsPath() *openapi3.PathItem {
	metricsSchema := &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: objectType(),
		Properties: openapi3.Schemas{
			"volume_m3":     numberSchemaRef(),
			"density_kg_m3": numberSchemaRef(),
			"reorder_value": numberSchemaRef(),
		},
		Required: []string{"volume_m3", "density_kg_m3", "reorder_value"},
	}}
	echoSchema := &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type: objectType(),
		Properties: openapi3.Schemas{
			"message":            stringSchemaRef(),
			"product":            schemaRef("CompleteProduct"),
			"calculated_metrics": metricsSchema,
		},
		Required: []string{"message", "product", "calculated_metrics"},
	}}

	return &openapi3.PathItem{
		Post: &openapi3.Operation{
			Summary:     "Create a product",
			OperationID: "createProduct",
			RequestBody: jsonRequestBody(schemaRef("CompleteProduct")),
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(200, jsonResponse("Product created successfully", echoSchema)),
				openapi3.WithStatus(400, jsonResponse("Validation failed", schemaRef("ValidationError"))),
			),
		},
	}
}

func laptopTierSchema() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		OneOf: openapi3.SchemaRefs{
			schemaRef("LaptopMinimum"),
			schemaRef("LaptopRegular"),
			schemaRef("LaptopExtended"),
		},
	}}
}

func laptopsPath() *openapi3.PathItem {
	listSchema := &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type:  arrayType(),
		Items: laptopTierSchema(),
	}}

	return &openapi3.PathItem{
		Get: &openapi3.Operation{
			Summary:     "List laptops",
			OperationID: "listLaptops",
			Parameters: openapi3.Parameters{
				verbosityParam(),
				queryParam("limit", "Maximum number of laptops to return",
					intSchema(floatPtr(1), floatPtr(100), 2)),
				queryParam("offset", "Number of laptops to skip",
					intSchema(floatPtr(0), nil, 0)),
			},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(200, jsonResponse("Successful response", listSchema)),
				openapi3.WithStatus(400, jsonResponse("Validation failed", schemaRef("ValidationError"))),
			),
		},
	}
}

func laptopPath() *openapi3.PathItem {
	return &openapi3.PathItem{
		Get: &openapi3.Operation{
			Summary:     "Get laptop details",
			OperationID: "getLaptop",
			Parameters: openapi3.Parameters{
				&openapi3.ParameterRef{Value: &openapi3.Parameter{
					Name:     "laptopID",
					In:       "path",
					Required: true,
					Schema:   stringSchemaRef(),
				}},
				verbosityParam(),
			},
			Responses: openapi3.NewResponses(
				openapi3.WithStatus(200, jsonResponse("Successful response with laptop details", laptopTierSchema())),
				openapi3.WithStatus(400, jsonResponse("Validation failed", schemaRef("ValidationError"))),
				openapi3.WithStatus(404, jsonResponse("Laptop not found", schemaRef("Error"))),
			),
		},
	}
}

func componentSchemas() openapi3.Schemas {
	return openapi3.Schemas{
		"Error": {Value: &openapi3.Schema{
			Type: objectType(),
			Properties: openapi3.Schemas{
				"error": stringSchemaRef(),
			},
			Required: []string{"error"},
		}},
		"ValidationError": {Value: &openapi3.Schema{
			Type: objectType(),
			Properties: openapi3.Schemas{
				"error": stringSchemaRef(),
				"details": {Value: &openapi3.Schema{
					Type: arrayType(),
					Items: &openapi3.SchemaRef{Value: &openapi3.Schema{
						Type: objectType(),
						Properties: openapi3.Schemas{
							"field":   stringSchemaRef(),
							"code":    stringSchemaRef(),
							"message": stringSchemaRef(),
						},
						Required: []string{"field", "code", "message"},
					}},
				}},
			},
			Required: []string{"error"},
		}},
		"Item": {Value: &openapi3.Schema{
			Type: objectType(),
			Properties: openapi3.Schemas{
				"id":   integerSchemaRef(),
				"name": stringSchemaRef(),
			},
			Required: []string{"id", "name"},
		}},
		"PaginatedItems": {Value: &openapi3.Schema{
			Type: objectType(),
			Properties: openapi3.Schemas{
				"items": {Value: &openapi3.Schema{
					Type:  arrayType(),
					Items: schemaRef("Item"),
				}},
				"total":       integerSchemaRef(),
				"page":        integerSchemaRef(),
				"size":        integerSchemaRef(),
				"total_pages": integerSchemaRef(),
			},
			Required: []string{"items", "total", "page", "size", "total_pages"},
		}},
		"Cat": {Value: &openapi3.Schema{
			Type: objectType(),
			Properties: openapi3.Schemas{
				"petType":     {Value: &openapi3.Schema{Type: stringType(), Enum: []any{"cat"}}},
				"name":        boundedString(1, 100),
				"favoriteToy": boundedString(1, 100),
			},
			Required: []string{"petType", "name", "favoriteToy"},
		}},
		"Dog": {Value: &openapi3.Schema{
			Type: objectType(),
			Properties: openapi3.Schemas{
				"petType": {Value: &openapi3.Schema{Type: stringType(), Enum: []any{"dog"}}},
				"name":    boundedString(1, 100),
				"breed":   boundedString(1, 100),
			},
			Required: []string{"petType", "name", "breed"},
		}},
		"Rectangle": {Value: &openapi3.Schema{
			Type: objectType(),
			Properties: openapi3.Schemas{
				"shape_type":   {Value: &openapi3.Schema{Type: stringType(), Enum: []any{"rectangle"}}},
				"width":        positiveNumber(1000),
				"height":       positiveNumber(1000),
				"color":        {Value: &openapi3.Schema{Type: stringType(), Pattern: "^#[0-9a-fA-F]{6}$"}},
				"name":         boundedString(1, 50),
				"aspect_ratio": readOnlyNumber(),
			},
			Required: []string{"shape_type", "width", "height"},
		}},
		"Circle": {Value: &openapi3.Schema{
			Type: objectType(),
			Properties: openapi3.Schemas{
				"shape_type":    {Value: &openapi3.Schema{Type: stringType(), Enum: []any{"circle"}}},
				"radius":        positiveNumber(500),
				"color":         {Value: &openapi3.Schema{Type: stringType(), Pattern: "^#[0-9a-fA-F]{6}$"}},
				"name":          boundedString(1, 50),
				"circumference": readOnlyNumber(),
				"area":          readOnlyNumber(),
			},
			Required: []string{"shape_type", "radius"},
		}},
		"BaseProduct": {Value: &openapi3.Schema{
			Type: objectType(),
			Properties: openapi3.Schemas{
				"id":    {Value: &openapi3.Schema{Type: stringType(), Pattern: "^[A-Z]{2}[0-9]{6}$"}},
				"name":  boundedString(1, 100),
				"price": {Value: &openapi3.Schema{Type: numberType(), Min: floatPtr(0), ExclusiveMin: true}},
			},
			Required: []string{"id", "name", "price"},
		}},
		"InventoryItem": {Value: &openapi3.Schema{
			Type: objectType(),
			Properties: openapi3.Schemas{
				"stock_count":        {Value: &openapi3.Schema{Type: integerType(), Min: floatPtr(0)}},
				"warehouse_location": {Value: &openapi3.Schema{Type: stringType(), Pattern: "^[A-Z]-[0-9]{2}-[0-9]{2}$"}},
				"reorder_point":      {Value: &openapi3.Schema{Type: integerType(), Min: floatPtr(0)}},
			},
			Required: []string{"stock_count", "warehouse_location", "reorder_point"},
		}},
		"ShippingDetails": {Value: &openapi3.Schema{
			Type: objectType(),
			Properties: openapi3.Schemas{
				"weight_kg": positiveNumber(1000),
				"dimensions_cm": {Value: &openapi3.Schema{
					Type:     arrayType(),
					Items:    numberSchemaRef(),
					MinItems: 3,
					MaxItems: uint64Ptr(3),
				}},
				"fragile": {Value: &openapi3.Schema{Type: boolType(), Default: false}},
			},
			Required: []string{"weight_kg", "dimensions_cm"},
		}},
		"CompleteProduct": {Value: &openapi3.Schema{
			AllOf: openapi3.SchemaRefs{
				schemaRef("BaseProduct"),
				schemaRef("InventoryItem"),
				schemaRef("ShippingDetails"),
			},
		}},
		"LaptopMinimum": {Value: &openapi3.Schema{
			Type: objectType(),
			Properties: openapi3.Schemas{
				"id":    stringSchemaRef(),
				"brand": stringSchemaRef(),
				"model": stringSchemaRef(),
				"price": numberSchemaRef(),
			},
			Required: []string{"id", "brand", "model", "price"},
		}},
		"LaptopRegular": {Value: &openapi3.Schema{
			AllOf: openapi3.SchemaRefs{
				schemaRef("LaptopMinimum"),
				{Value: &openapi3.Schema{
					Type: objectType(),
					Properties: openapi3.Schemas{
						"processor":        stringSchemaRef(),
						"ram_gb":           integerSchemaRef(),
						"storage_gb":       integerSchemaRef(),
						"screen_size":      numberSchemaRef(),
						"operating_system": stringSchemaRef(),
						"in_stock":         {Value: &openapi3.Schema{Type: boolType()}},
					},
					Required: []string{"processor", "ram_gb", "storage_gb", "screen_size", "operating_system", "in_stock"},
				}},
			},
		}},
		"LaptopExtended": {Value: &openapi3.Schema{
			AllOf: openapi3.SchemaRefs{
				schemaRef("LaptopRegular"),
				{Value: &openapi3.Schema{
					Type: objectType(),
					Properties: openapi3.Schemas{
						"graphics_card": stringSchemaRef(),
						"battery_whr":   integerSchemaRef(),
						"weight_kg":     numberSchemaRef(),
						"dimensions_cm": {Value: &openapi3.Schema{
							Type:     arrayType(),
							Items:    numberSchemaRef(),
							MinItems: 3,
							MaxItems: uint64Ptr(3),
						}},
						"ports":           stringArraySchemaRef(),
						"warranty_months": integerSchemaRef(),
						"release_date":    dateTimeSchemaRef(),
						"last_updated":    dateTimeSchemaRef(),
						"description":     stringSchemaRef(),
						"features":        stringArraySchemaRef(),
						"reviews_count":   integerSchemaRef(),
						"average_rating":  numberSchemaRef(),
					},
					Required: []string{
						"graphics_card", "battery_whr", "weight_kg", "dimensions_cm", "ports",
						"warranty_months", "release_date", "last_updated", "description", "features",
						"reviews_count", "average_rating",
					},
				}},
			},
		}},
	}
}

func objectType() *openapi3.Types  { return &openapi3.Types{"object"} }
func arrayType() *openapi3.Types   { return &openapi3.Types{"array"} }
func stringType() *openapi3.Types  { return &openapi3.Types{"string"} }
func numberType() *openapi3.Types  { return &openapi3.Types{"number"} }
func integerType() *openapi3.Types { return &openapi3.Types{"integer"} }
func boolType() *openapi3.Types    { return &openapi3.Types{"boolean"} }

func floatPtr(v float64) *float64 { return &v }
func uint64Ptr(v uint64) *uint64  { return &v }

func schemaRef(name string) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Ref: "#/components/schemas/" + name}
}

func stringSchemaRef() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: stringType()}}
}

func numberSchemaRef() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: numberType()}}
}

func integerSchemaRef() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: integerType()}}
}

func dateTimeSchemaRef() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: stringType(), Format: "date-time"}}
}

func stringArraySchemaRef() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type:  arrayType(),
		Items: stringSchemaRef(),
	}}
}

func boundedString(minLen uint64, maxLen uint64) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type:      stringType(),
		MinLength: minLen,
		MaxLength: uint64Ptr(maxLen),
	}}
}

// positiveNumber is a number in (0, max] with at most 2 decimal places
// enforced by the validation engine, the document only carries the bounds.
func positiveNumber(max float64) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type:         numberType(),
		Min:          floatPtr(0),
		ExclusiveMin: true,
		Max:          floatPtr(max),
	}}
}

func readOnlyNumber() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{Type: numberType(), ReadOnly: true}}
}

func intSchema(min, max *float64, def int) *openapi3.SchemaRef {
	return &openapi3.SchemaRef{Value: &openapi3.Schema{
		Type:    integerType(),
		Min:     min,
		Max:     max,
		Default: def,
	}}
}

func queryParam(name, description string, schema *openapi3.SchemaRef) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{Value: &openapi3.Parameter{
		Name:        name,
		In:          "query",
		Description: description,
		Schema:      schema,
	}}
}

func verbosityParam() *openapi3.ParameterRef {
	return queryParam("verbosity", "Control the verbosity level of the response",
		&openapi3.SchemaRef{Value: &openapi3.Schema{
			Type:    stringType(),
			Enum:    []any{"minimum", "regular", "extended"},
			Default: "regular",
		}})
}

func jsonRequestBody(schema *openapi3.SchemaRef) *openapi3.RequestBodyRef {
	return &openapi3.RequestBodyRef{Value: &openapi3.RequestBody{
		Required: true,
		Content:  openapi3.NewContentWithJSONSchemaRef(schema),
	}}
}

func jsonResponse(description string, schema *openapi3.SchemaRef) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{Value: &openapi3.Response{
		Description: &description,
		Content:     openapi3.NewContentWithJSONSchemaRef(schema),
	}}
}

func textResponse(description string) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{Value: &openapi3.Response{
		Description: &description,
		Content: openapi3.Content{
			"text/plain": &openapi3.MediaType{
				Schema: stringSchemaRef(),
			},
		},
	}}
}
