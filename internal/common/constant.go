package common

// UserDataKey is the store key holding the single serialized credential record.
const UserDataKey = "userData"

// SealedSaltKey is reserved by the sealing store decorator for its key-derivation salt.
const SealedSaltKey = "sealed_salt"
