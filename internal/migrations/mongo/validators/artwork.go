package validators

import "go.mongodb.org/mongo-driver/bson"

var ArtworkValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"title",
			"artist",
			"description",
			"price",
			"image_url",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},
			"title": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 200,
			},
			"artist": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 100,
			},
			"description": bson.M{
				"bsonType":  "string",
				"minLength": 10,
				"maxLength": 5000,
			},
			"price": bson.M{
				"bsonType": "number",
				"minimum":  0,
			},
			"image_url": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},
			"dimensions": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},
			"medium": bson.M{
				"bsonType":  "string",
				"maxLength": 100,
			},
			"year": bson.M{
				"bsonType": []string{"int", "long"},
				"minimum":  1000,
			},
			"status": bson.M{
				"enum": []string{"available", "sold"},
			},
			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
