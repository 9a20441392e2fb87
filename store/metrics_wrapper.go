package store

import "time"

//go:generate counterfeiter -o fakes/metrics_sender.go --fake-name MetricsSender . metricsSender
type metricsSender interface {
	IncrementCounter(string)
	SendDuration(string, time.Duration)
}

type UserMetricsWrapper struct {
	Store         UserStore
	MetricsSender metricsSender
}

func (mw *UserMetricsWrapper) Create(user User) (User, error) {
	startTime := time.Now()
	created, err := mw.Store.Create(user)
	createTimeDuration := time.Now().Sub(startTime)
	if err != nil {
		mw.MetricsSender.IncrementCounter("StoreUserCreateError")
	}
	mw.MetricsSender.SendDuration("StoreUserCreateTime", createTimeDuration)
	return created, err
}

func (mw *UserMetricsWrapper) ByEmail(email string) (User, error) {
	startTime := time.Now()
	user, err := mw.Store.ByEmail(email)
	byEmailTimeDuration := time.Now().Sub(startTime)
	if err != nil && err != ErrNotFound {
		mw.MetricsSender.IncrementCounter("StoreUserByEmailError")
	}
	mw.MetricsSender.SendDuration("StoreUserByEmailTime", byEmailTimeDuration)
	return user, err
}

func (mw *UserMetricsWrapper) ByID(id string) (User, error) {
	startTime := time.Now()
	user, err := mw.Store.ByID(id)
	byIDTimeDuration := time.Now().Sub(startTime)
	if err != nil && err != ErrNotFound {
		mw.MetricsSender.IncrementCounter("StoreUserByIDError")
	}
	mw.MetricsSender.SendDuration("StoreUserByIDTime", byIDTimeDuration)
	return user, err
}

func (mw *UserMetricsWrapper) All() ([]User, error) {
	startTime := time.Now()
	users, err := mw.Store.All()
	allTimeDuration := time.Now().Sub(startTime)
	if err != nil {
		mw.MetricsSender.IncrementCounter("StoreUserAllError")
	}
	mw.MetricsSender.SendDuration("StoreUserAllTime", allTimeDuration)
	return users, err
}

func (mw *UserMetricsWrapper) Count() (int64, error) {
	startTime := time.Now()
	count, err := mw.Store.Count()
	countTimeDuration := time.Now().Sub(startTime)
	if err != nil {
		mw.MetricsSender.IncrementCounter("StoreUserCountError")
	}
	mw.MetricsSender.SendDuration("StoreUserCountTime", countTimeDuration)
	return count, err
}

type ProductMetricsWrapper struct {
	Store         ProductStore
	MetricsSender metricsSender
}

func (mw *ProductMetricsWrapper) Create(product Product) (Product, error) {
	startTime := time.Now()
	created, err := mw.Store.Create(product)
	createTimeDuration := time.Now().Sub(startTime)
	if err != nil {
		mw.MetricsSender.IncrementCounter("StoreProductCreateError")
	}
	mw.MetricsSender.SendDuration("StoreProductCreateTime", createTimeDuration)
	return created, err
}

func (mw *ProductMetricsWrapper) ByGUID(guid string) (Product, error) {
	startTime := time.Now()
	product, err := mw.Store.ByGUID(guid)
	byGUIDTimeDuration := time.Now().Sub(startTime)
	if err != nil && err != ErrNotFound {
		mw.MetricsSender.IncrementCounter("StoreProductByGUIDError")
	}
	mw.MetricsSender.SendDuration("StoreProductByGUIDTime", byGUIDTimeDuration)
	return product, err
}

func (mw *ProductMetricsWrapper) Update(guid string, update ProductUpdate) (Product, error) {
	startTime := time.Now()
	product, err := mw.Store.Update(guid, update)
	updateTimeDuration := time.Now().Sub(startTime)
	if err != nil && err != ErrNotFound {
		mw.MetricsSender.IncrementCounter("StoreProductUpdateError")
	}
	mw.MetricsSender.SendDuration("StoreProductUpdateTime", updateTimeDuration)
	return product, err
}

func (mw *ProductMetricsWrapper) Delete(guid string) (Product, error) {
	startTime := time.Now()
	product, err := mw.Store.Delete(guid)
	deleteTimeDuration := time.Now().Sub(startTime)
	if err != nil && err != ErrNotFound {
		mw.MetricsSender.IncrementCounter("StoreProductDeleteError")
	}
	mw.MetricsSender.SendDuration("StoreProductDeleteTime", deleteTimeDuration)
	return product, err
}

func (mw *ProductMetricsWrapper) List(filter ProductFilter) ([]Product, int64, error) {
	startTime := time.Now()
	products, total, err := mw.Store.List(filter)
	listTimeDuration := time.Now().Sub(startTime)
	if err != nil {
		mw.MetricsSender.IncrementCounter("StoreProductListError")
	}
	mw.MetricsSender.SendDuration("StoreProductListTime", listTimeDuration)
	return products, total, err
}

func (mw *ProductMetricsWrapper) Count() (int64, error) {
	startTime := time.Now()
	count, err := mw.Store.Count()
	countTimeDuration := time.Now().Sub(startTime)
	if err != nil {
		mw.MetricsSender.IncrementCounter("StoreProductCountError")
	}
	mw.MetricsSender.SendDuration("StoreProductCountTime", countTimeDuration)
	return count, err
}
