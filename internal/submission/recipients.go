package submission

import (
	"context"
	"fmt"
	"strings"

	"websubmit/portal/internal/domain"
	"websubmit/portal/internal/mailer"
)

// ActingUserFile holds the address of the user who triggered the current action
const ActingUserFile = "SuE"

type RoleLookup interface {
	RoleUsers(ctx context.Context, role string) ([]domain.RoleUser, error)
}

type FieldLookup interface {
	FieldValues(ctx context.Context, recid int64, tag string) ([]string, error)
}

// RecipientResolver collects who is told about a referee decision: the referees
// of the category, the general referees of the document type, the record owners
// and the acting user.
type RecipientResolver struct {
	roles     RoleLookup
	fields    FieldLookup
	ownerTag  string
	registrar Registrar
}

func NewRecipientResolver(roles RoleLookup, fields FieldLookup, ownerTag string, registrar Registrar) *RecipientResolver {
	return &RecipientResolver{
		roles:     roles,
		fields:    fields,
		ownerTag:  ownerTag,
		registrar: registrar,
	}
}

// RefereeRoles returns the role names checked for a document type and category
func RefereeRoles(doctype, category string) []string {
	return []string{
		fmt.Sprintf("referee_%s_%s", doctype, category),
		fmt.Sprintf("referee_%s_*", doctype),
	}
}

// Resolve returns the de-duplicated recipient list, in lookup order
func (r *RecipientResolver) Resolve(ctx context.Context, wd WorkDir, doctype, category string, recid int64) []string {
	var addresses []string

	for _, role := range RefereeRoles(doctype, category) {
		users, err := r.roles.RoleUsers(ctx, role)
		if err != nil {
			r.registrar.Register(ctx, fmt.Sprintf("Error looking up members of role %s.", role), err)
			continue
		}
		for _, u := range users {
			addresses = append(addresses, u.Email)
		}
	}

	owners, err := r.fields.FieldValues(ctx, recid, r.ownerTag)
	if err != nil {
		r.registrar.Register(ctx, fmt.Sprintf("Error reading owners (%s) of record %d.", r.ownerTag, recid), err)
	}
	for _, owner := range owners {
		addresses = append(addresses, strings.ToLower(strings.TrimSpace(owner)))
	}

	// Only the first line of the acting user file is an address
	if sue := readMarker(ctx, r.registrar, "RecipientResolver", wd, ActingUserFile); sue.Found {
		line, _, _ := strings.Cut(sue.Value, "\n")
		addresses = append(addresses, line)
	}

	return mailer.SplitAddresses(strings.Join(addresses, ","))
}
