package nft

import (
	"github.com/dexcore/ledger/internal/codec"
	"github.com/dexcore/ledger/internal/ledger"
	"github.com/dexcore/ledger/internal/ledger/keylet"
	"github.com/dexcore/ledger/internal/store"
	"github.com/dexcore/ledger/internal/types"
)

// Module implements the NFT entry points over a StateStore.
type Module struct {
	store  store.StateStore
	events *ledger.Bus
}

// New constructs a Module. events may be nil.
func New(s store.StateStore, events *ledger.Bus) *Module {
	return &Module{store: s, events: events}
}

func (m *Module) emit(kind string, payload map[string]string) {
	if m.events == nil {
		return
	}
	m.events.Emit(ledger.Event{Module: "nft", Kind: kind, Payload: payload})
}

type classRecord struct {
	Owner  types.Account
	Data   string
	Tokens []types.FixedString
}

func (m *Module) getClass(classID types.FixedString) (NftClass, bool, error) {
	raw, found, err := m.store.Get(keylet.NftClass(classID))
	if err != nil || !found {
		return NftClass{}, false, err
	}
	var rec classRecord
	if err := codec.Decode(raw, &rec); err != nil {
		return NftClass{}, false, err
	}
	return NftClass(rec), true, nil
}

func (m *Module) setClass(classID types.FixedString, c NftClass) error {
	buf, err := codec.Encode(classRecord(c))
	if err != nil {
		return err
	}
	return m.store.Set(keylet.NftClass(classID), buf)
}

func (m *Module) deleteClass(classID types.FixedString) error {
	return m.store.Delete(keylet.NftClass(classID))
}

func (m *Module) getToken(tokenID types.FixedString) (TokenInfo, bool, error) {
	raw, found, err := m.store.Get(keylet.Token(tokenID))
	if err != nil || !found {
		return TokenInfo{}, false, err
	}
	var rec TokenInfo
	if err := codec.Decode(raw, &rec); err != nil {
		return TokenInfo{}, false, err
	}
	return rec, true, nil
}

func (m *Module) setToken(tokenID types.FixedString, info TokenInfo) error {
	buf, err := codec.Encode(info)
	if err != nil {
		return err
	}
	return m.store.Set(keylet.Token(tokenID), buf)
}

func (m *Module) deleteToken(tokenID types.FixedString) error {
	return m.store.Delete(keylet.Token(tokenID))
}

// CreateNftClass registers a new, empty NFT class owned by owner.
func (m *Module) CreateNftClass(owner types.Account, classID types.FixedString, data string) error {
	_, found, err := m.getClass(classID)
	if err != nil {
		return err
	}
	if found {
		return ErrNftClassIDAlreadyExisted
	}
	if err := m.setClass(classID, NftClass{Owner: owner, Data: data}); err != nil {
		return err
	}
	m.emit("NftClassCreated", map[string]string{"owner": owner.String(), "class_id": classID.String()})
	return nil
}

// DestroyNftClass removes a class, failing unless it's empty and the
// caller is its owner.
func (m *Module) DestroyNftClass(owner types.Account, classID types.FixedString) error {
	class, found, err := m.getClass(classID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNftClassIDNotExisted
	}
	if class.Owner != owner {
		return ErrNoClassPermission
	}
	if len(class.Tokens) != 0 {
		return ErrCannotDestroyNftClass
	}
	if err := m.deleteClass(classID); err != nil {
		return err
	}
	m.emit("NftClassDestroyed", map[string]string{"owner": owner.String(), "class_id": classID.String()})
	return nil
}

// MintToken mints tokenID into classID, owned by owner. Rejects a
// token ID that already exists anywhere, not just within classID — the
// global-uniqueness fix spec.md mandates over the source's class-scoped
// check.
func (m *Module) MintToken(owner types.Account, classID, tokenID types.FixedString, metadata, data string) error {
	class, found, err := m.getClass(classID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNftClassIDNotExisted
	}
	if class.hasToken(tokenID) {
		return ErrTokenIDAlreadyExisted
	}

	if _, exists, err := m.getToken(tokenID); err != nil {
		return err
	} else if exists {
		return ErrTokenIDAlreadyExistsGlobally
	}

	class.addToken(tokenID)
	if err := m.setClass(classID, class); err != nil {
		return err
	}

	if err := m.setToken(tokenID, TokenInfo{
		Owner:    owner,
		ClassID:  classID,
		Metadata: metadata,
		Data:     data,
	}); err != nil {
		return err
	}

	if err := m.store.Set(keylet.OwnerIndex(owner, classID, tokenID), []byte{1}); err != nil {
		return err
	}

	m.emit("NftTokenMint", map[string]string{
		"owner": owner.String(), "class_id": classID.String(), "token_id": tokenID.String(),
	})
	return nil
}

// BurnToken removes tokenID from classID. owner must be both the
// token's owner and the class's owner (the dual ownership check).
func (m *Module) BurnToken(owner types.Account, classID, tokenID types.FixedString) error {
	token, found, err := m.getToken(tokenID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTokenIDNotExisted
	}
	if token.Owner != owner {
		return ErrInvalidTokenOwner
	}

	class, found, err := m.getClass(classID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNftClassIDNotExisted
	}
	if class.Owner != owner {
		return ErrNoClassPermission
	}

	class.removeToken(tokenID)
	if err := m.setClass(classID, class); err != nil {
		return err
	}
	if err := m.deleteToken(tokenID); err != nil {
		return err
	}
	if err := m.store.Delete(keylet.OwnerIndex(owner, classID, tokenID)); err != nil {
		return err
	}

	m.emit("NftTokenBurn", map[string]string{
		"owner": owner.String(), "class_id": classID.String(), "token_id": tokenID.String(),
	})
	return nil
}

// TransferToken moves tokenID's ownership from from to to. A transfer
// from an account to itself is a no-op success.
func (m *Module) TransferToken(from, to types.Account, classID, tokenID types.FixedString) error {
	if _, found, err := m.getClass(classID); err != nil {
		return err
	} else if !found {
		return ErrNftClassIDNotExisted
	}

	token, found, err := m.getToken(tokenID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTokenIDNotExisted
	}
	if token.Owner != from {
		return ErrInvalidTokenOwner
	}

	isOwner, err := m.IsOwner(from, classID, tokenID)
	if err != nil {
		return err
	}
	if !isOwner {
		return ErrNoPermission
	}

	if from == to {
		return nil
	}

	token.Owner = to
	if err := m.setToken(tokenID, token); err != nil {
		return err
	}
	if err := m.store.Delete(keylet.OwnerIndex(from, classID, tokenID)); err != nil {
		return err
	}
	if err := m.store.Set(keylet.OwnerIndex(to, classID, tokenID), []byte{1}); err != nil {
		return err
	}

	m.emit("NftTokenTransfer", map[string]string{
		"from": from.String(), "to": to.String(), "class_id": classID.String(), "token_id": tokenID.String(),
	})
	return nil
}

// IsOwner consults the owner index for (account, class_id, token_id).
func (m *Module) IsOwner(account types.Account, classID, tokenID types.FixedString) (bool, error) {
	_, found, err := m.store.Get(keylet.OwnerIndex(account, classID, tokenID))
	return found, err
}

// IsTokenExisted reports whether both the class and the token exist.
func (m *Module) IsTokenExisted(classID, tokenID types.FixedString) (bool, error) {
	_, classFound, err := m.getClass(classID)
	if err != nil || !classFound {
		return false, err
	}
	_, tokenFound, err := m.getToken(tokenID)
	return tokenFound, err
}
