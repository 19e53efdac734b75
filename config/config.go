package config

import (
	"bufio"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type DictProperties struct {
	RDBFilename   string `cfg:"dbfilename"`
	BucketCount   int    `cfg:"bucketcount"`
	BucketPool    bool   `cfg:"bucketpool"`
	PoolMaxIdle   int    `cfg:"poolmaxidle"`
	LogLevel      string `cfg:"loglevel"`
	LogFormat     string `cfg:"logformat"`
	LogFile       string `cfg:"logfile"`
	LogMaxSize    int    `cfg:"logmaxsize"`
	LogMaxBackups int    `cfg:"logmaxbackups"`
	LogMaxAge     int    `cfg:"logmaxage"`
}

var Properties *DictProperties

func init() {
	Properties = defaultProperties()
}

func defaultProperties() *DictProperties {
	return &DictProperties{
		RDBFilename: "dump.rdb",
		BucketCount: 10,
		PoolMaxIdle: 1024,
		LogLevel:    "info",
		LogFormat:   "console",
		LogMaxSize:  64,
	}
}

func SetupConfigProperties(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "open config file")
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(file)
	p, err := parse(file)
	if err != nil {
		return errors.Wrapf(err, "parse config file %s", filename)
	}
	Properties = p
	return nil
}

// parse 读取 "key value" 形式的配置，未出现的项保留默认值
func parse(reader io.Reader) (*DictProperties, error) {
	res := defaultProperties()
	m := make(map[string]string)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > 0 && line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[0:pivot]
			val := strings.Trim(line[pivot+1:], " ")
			m[strings.ToLower(key)] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := fillProperties(res, m); err != nil {
		return nil, err
	}
	return res, nil
}

func fillProperties(p *DictProperties, m map[string]string) error {
	fields := reflect.TypeOf(p).Elem()
	values := reflect.ValueOf(p).Elem()
	n := fields.NumField()
	for i := 0; i < n; i++ {
		field := fields.Field(i)
		fieldVal := values.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		val, ok := m[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(val)
		case reflect.Int:
			intV, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid value for %s", key)
			}
			fieldVal.SetInt(intV)
		case reflect.Bool:
			boolV := "yes" == val
			fieldVal.SetBool(boolV)
		}
	}
	return nil
}
