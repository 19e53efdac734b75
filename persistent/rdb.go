package persistent

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hdt3213/rdb/core"
	rdb "github.com/hdt3213/rdb/parser"
	"github.com/pkg/errors"

	"godis-dict/datastruct/dict"
	"godis-dict/lib/logger"
)

// Keyspace 是快照保存和加载的字典类型
type Keyspace = dict.ChainedDictionary[string, []byte]

// SaveRDB 把 d 中的每个键值对作为字符串对象写入 0 号数据库
func SaveRDB(w io.Writer, d *Keyspace) error {
	encoder := core.NewEncoder(w).EnableCompress()
	if err := encoder.WriteHeader(); err != nil {
		return errors.Wrap(err, "write rdb header")
	}
	auxMap := map[string]string{
		"redis-ver":  "6.0.0",
		"redis-bits": "64",
		"ctime":      strconv.FormatInt(time.Now().Unix(), 10),
	}
	for k, v := range auxMap {
		if err := encoder.WriteAux(k, v); err != nil {
			return errors.Wrapf(err, "write rdb aux %s", k)
		}
	}
	if d.Size() > 0 {
		if err := encoder.WriteDBHeader(0, uint64(d.Size()), 0); err != nil {
			return errors.Wrap(err, "write rdb db header")
		}
		var err error
		d.ForEach(func(key string, value []byte) bool {
			err = encoder.WriteStringObject(key, value)
			return err == nil
		})
		if err != nil {
			return errors.Wrap(err, "write rdb string object")
		}
	}
	return errors.Wrap(encoder.WriteEnd(), "write rdb end")
}

// SaveRDBFile 先写入同目录下的临时文件，成功后再重命名
func SaveRDBFile(filename string, d *Keyspace) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp rdb file")
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if err = SaveRDB(tmp, d); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp rdb file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), filename), "rename rdb file")
}

// LoadRDB 把快照中的对象放入 d。哈希对象按 "key.field" 展开，其它类型被跳过
func LoadRDB(r io.Reader, d *Keyspace) (loaded int, err error) {
	decoder := rdb.NewDecoder(r)
	err = decoder.Parse(func(obj rdb.RedisObject) bool {
		loaded += loadObject(obj, d)
		return true
	})
	if err != nil {
		return loaded, errors.Wrap(err, "parse rdb")
	}
	return loaded, nil
}

// loadObject 返回放入 d 的键值对数量，无法识别的对象被跳过
func loadObject(obj rdb.RedisObject, d *Keyspace) int {
	switch obj.GetType() {
	case rdb.StringType:
		strObj, ok := obj.(*rdb.StringObject)
		if !ok {
			break
		}
		d.Put(obj.GetKey(), strObj.Value)
		return 1
	case rdb.HashType:
		hashObj, ok := obj.(*rdb.HashObject)
		if !ok {
			break
		}
		for field, v := range hashObj.Hash {
			d.Put(obj.GetKey()+"."+field, v)
		}
		return len(hashObj.Hash)
	}
	logger.Warnf("skip rdb object %s of type %s", obj.GetKey(), obj.GetType())
	return 0
}

func LoadRDBFile(filename string, d *Keyspace) (int, error) {
	rdbFile, err := os.Open(filename)
	if err != nil {
		return 0, errors.Wrap(err, "open rdb file")
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(rdbFile)
	return LoadRDB(rdbFile, d)
}
