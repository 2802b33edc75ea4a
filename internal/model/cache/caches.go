package cache

import (
	"sync"

	"github.com/redis/go-redis/v9"
	"gopkg.in/guregu/null.v3"

	"github.com/motus-health/backend/internal/model"
	"github.com/motus-health/backend/internal/pkg/cache"
)

type Flusher func() error

var (
	PatientByID *cache.Set[model.Patient]
	DeviceByMac *cache.Set[model.Device]

	ActivityTypes *cache.Singular[[]*model.ActivityType]

	once sync.Once

	SetMap             map[string]Flusher
	SingularFlusherMap map[string]Flusher
)

func Initialize(client *redis.Client) {
	once.Do(func() {
		initializeCaches(client)
	})
}

// Delete flushes the named cache; a valid key narrows the deletion to a
// single entry of a set cache.
func Delete(name string, key null.String) error {
	if key.Valid {
		if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	} else {
		if _, ok := SingularFlusherMap[name]; ok {
			if err := SingularFlusherMap[name](); err != nil {
				return err
			}
		} else if _, ok := SetMap[name]; ok {
			if err := SetMap[name](); err != nil {
				return err
			}
		}
	}
	return nil
}

func initializeCaches(client *redis.Client) {
	SetMap = make(map[string]Flusher)
	SingularFlusherMap = make(map[string]Flusher)

	// patient
	PatientByID = cache.NewSet[model.Patient](client, "patient#patientId")

	SetMap["patient#patientId"] = PatientByID.Flush

	// device
	DeviceByMac = cache.NewSet[model.Device](client, "device#macAddress")

	SetMap["device#macAddress"] = DeviceByMac.Flush

	// activity_type
	ActivityTypes = cache.NewSingular[[]*model.ActivityType]("activityTypes")

	SingularFlusherMap["activityTypes"] = ActivityTypes.Flush
}
