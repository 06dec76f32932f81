package rbac

// Default policy. Teachers author curriculum and run assessments; students
// see activities and their own results.
var RolePermissions = map[string][]string{
	"student": {
		"activity:view",
		"assessment:view-own",
		"ai:chat",
		"ai:translate",
		"assets:view",
	},
	"teacher": {
		"activity:create",
		"activity:view",
		"activity:delete",
		"assessment:create",
		"assessment:save",
		"assessment:submit",
		"assessment:view-own",
		"assessment:view-all",
		"users:bulk_upsert",
		"users:list",
		"ai:*",
		"assets:*",
	},
	"admin": {
		"*", // everything
	},
}
