package erro

const GalleryServiceUnavalaible = "Gallery-Service is unavailable"
const ContextCanceled = "Context canceled or timeout"

const NotFoundType = "NotFound"
const StorageUnavailableType = "StorageUnavailable"
const ImageEncodingType = "ImageEncoding"
const InconsistentType = "Inconsistent"

const NonExistentAlbum = "A non-existent albumid has been entered"
const NonExistentPhoto = "A non-existent photoid has been entered"
const PhotoNotReady = "Photo is not fully ingested yet, retry later"
const ConversionFailed = "Image conversion failed"
const InvalidAuthorizationCode = "Invalid authorization code has been entered"
const InvalidSessionData = "Invalid session data"
const OrphanedPhotoMetadata = "Photo metadata left without canonical blob after failed cleanup"

const ErrorAfterReqPhotos = "Error after request into photos: %v"
const ErrorAfterReqAlbums = "Error after request into albums: %v"
const ErrorAfterReqUsers = "Error after request into users: %v"
const ErrorPutBlob = "Put blob error: %v"
const ErrorGetBlob = "Get blob error: %v"
const ErrorDelBlob = "Delete blob error: %v"
const ErrorSetPhoto = "Set photo-cache error: %v"
const ErrorGetPhoto = "Get photo-cache error: %v"
const ErrorDelPhoto = "Del photo-cache error: %v"
const ErrorSetSession = "Set session error: %v"
const ErrorGetSession = "Get session error: %v"
const ErrorDelSession = "Delete session error: %v"
const ErrorMarshal = "Data marshal error: %v"
const ErrorUnmarshal = "Data unmarshal error: %v"
const ErrorOverflowTaskQ = "Task queue is full"

type CustomError struct {
	Message string
	Type    string
}

func (e *CustomError) Error() string {
	return e.Message
}

func NotFoundError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: NotFoundType}
}
func StorageError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: StorageUnavailableType}
}
func EncodingError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ImageEncodingType}
}
func InconsistentError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: InconsistentType}
}
