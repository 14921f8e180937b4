// Package credentials persists the single registered user profile.
//
// The profile is one JSON document stored under common.UserDataKey in a
// metadata.Repository. Put overwrites whatever was there; there is only
// ever one registered user.
//
// Typical Usage
//
//	repo := credentials.NewKVRepository(store)
//	_ = repo.Put(ctx, &models.Credential{Email: "a@b.cd", Password: "Abc123"})
//	cred, err := repo.Get(ctx) // common.ErrorNotFound when nobody registered
package credentials
