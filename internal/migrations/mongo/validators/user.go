package validators

import "go.mongodb.org/mongo-driver/bson"

// UserValidator applies to both the Users and Admins collections.
var UserValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"email",
			"password_hash",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},
			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},
			"email": bson.M{
				"bsonType": "string",
			},
			"phone": bson.M{
				"bsonType": "string",
				"pattern":  `^\+[1-9]\d{7,14}$`,
			},
			"password_hash": bson.M{
				"bsonType":  "string",
				"minLength": 59,
				"maxLength": 60,
			},
			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
