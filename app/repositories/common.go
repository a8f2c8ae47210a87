package repositories

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"pinboard/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	// Key prefixes for the keyed collections
	PostKeyPrefix   = "post:"
	PostIDKeyPrefix = "postid:"

	// Sequence key for insertion-ordered post keys
	PostSeqKey = "seq:post"
)

// postKey builds the record key for a sequence number. Keys are
// zero-padded so badger's byte-ordered iteration yields insertion order.
func postKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%012d", PostKeyPrefix, seq))
}

// postIDKey builds the index key mapping a post id to its sequence number.
func postIDKey(id uuid.UUID) []byte {
	return []byte(PostIDKeyPrefix + id.String())
}

// nextSeq allocates the next sequence number within txn.
func nextSeq(txn *badger.Txn) (uint64, error) {
	var seq uint64
	item, err := txn.Get([]byte(PostSeqKey))
	if err == badger.ErrKeyNotFound {
		seq = 1
	} else if err != nil {
		return 0, err
	} else {
		err = item.Value(func(val []byte) error {
			seq = binary.BigEndian.Uint64(val)
			return nil
		})
		if err != nil {
			return 0, err
		}
		seq++
	}

	if err := txn.Set([]byte(PostSeqKey), seqBytes(seq)); err != nil {
		return 0, err
	}
	return seq, nil
}

func seqBytes(seq uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	return buf
}

// seqForID resolves a post id to its sequence number within txn.
func seqForID(txn *badger.Txn, id uuid.UUID) (uint64, error) {
	item, err := txn.Get(postIDKey(id))
	if err == badger.ErrKeyNotFound {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	var seq uint64
	err = item.Value(func(val []byte) error {
		seq = binary.BigEndian.Uint64(val)
		return nil
	})
	return seq, err
}

// postRecord is the storage shape of a post. Post excludes the token
// from JSON, so the record carries it as an explicit field.
type postRecord struct {
	models.Post
	Token string `json:"token"`
}

func marshalPost(post *models.Post) ([]byte, error) {
	data, err := json.Marshal(postRecord{Post: *post, Token: post.Token})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal post: %v", err)
	}
	return data, nil
}

func unmarshalPost(data []byte) (*models.Post, error) {
	var rec postRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal post: %v", err)
	}
	post := rec.Post
	post.Token = rec.Token
	return &post, nil
}
