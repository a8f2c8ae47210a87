package repositories

import (
	"sync"

	"pinboard/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerPostRepository implements PostRepository using BadgerDB. Each
// operation runs in a single transaction; the mutex serializes compound
// read-modify-write sequences against concurrent mutations.
type BadgerPostRepository struct {
	db    *badger.DB
	mutex sync.RWMutex
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create inserts a new post under a fresh sequence key and indexes it
// by id, all within one transaction.
func (r *BadgerPostRepository) Create(post *models.Post) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		seq, err := nextSeq(txn)
		if err != nil {
			return err
		}

		data, err := marshalPost(post)
		if err != nil {
			return err
		}

		if err := txn.Set(postKey(seq), data); err != nil {
			return err
		}
		return txn.Set(postIDKey(post.ID), seqBytes(seq))
	})
}

// GetByID retrieves a post by id
func (r *BadgerPostRepository) GetByID(id uuid.UUID) (*models.Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var post *models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		seq, err := seqForID(txn, id)
		if err != nil {
			return err
		}

		item, err := txn.Get(postKey(seq))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			post, err = unmarshalPost(val)
			return err
		})
	})

	if err != nil {
		return nil, err
	}
	return post, nil
}

// List retrieves all posts in insertion order.
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				post, err := unmarshalPost(val)
				if err != nil {
					return err
				}
				posts = append(posts, post)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Update overwrites an existing post
func (r *BadgerPostRepository) Update(post *models.Post) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		seq, err := seqForID(txn, post.ID)
		if err != nil {
			return err
		}

		data, err := marshalPost(post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(seq), data)
	})
}

// Delete removes a post and its id index entry
func (r *BadgerPostRepository) Delete(id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.db.Update(func(txn *badger.Txn) error {
		seq, err := seqForID(txn, id)
		if err != nil {
			return err
		}

		if err := txn.Delete(postKey(seq)); err != nil {
			return err
		}
		return txn.Delete(postIDKey(id))
	})
}
