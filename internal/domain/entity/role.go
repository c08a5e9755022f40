package entity

// Account roles. Registration always assigns RolePharmacist, admins are
// promoted out of band.
const (
	RolePharmacist = "pharmacist"
	RoleAdmin      = "admin"
)
